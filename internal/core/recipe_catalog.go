package core

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"vpsup/internal/core/domain"
)

//go:embed recipes/*.tmpl
var embeddedTemplates embed.FS

const CustomRecipeName = "custom"

func mustTemplate(name string) string {
	data, err := embeddedTemplates.ReadFile("recipes/" + name)
	if err != nil {
		panic(fmt.Sprintf("missing embedded template %s: %v", name, err))
	}
	return string(data)
}

func builtinRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			Name:        "nginx",
			Description: "nginx serving a static site for the configured domain",
			Dependencies: domain.StaticDependencies(
				domain.DependencySpec{CommandName: "nginx", PackageName: "nginx"},
				domain.DependencySpec{CommandName: "curl", PackageName: "curl"},
			),
			Files: []domain.FileTemplate{
				{
					Destination: "/etc/nginx/conf.d/{{ .Settings.domain }}.conf",
					Template:    mustTemplate("nginx_site.conf.tmpl"),
				},
				{
					Destination: "/var/www/{{ .Settings.domain }}/index.html",
					Template:    mustTemplate("index.html.tmpl"),
				},
			},
			Activate: [][]string{
				{"nginx", "-t"},
				{"systemctl", "enable", "--now", "nginx"},
				{"systemctl", "reload", "nginx"},
			},
		},
		{
			Name:        "certbot",
			Description: "Let's Encrypt certificate for the configured domain (webroot)",
			Dependencies: domain.StaticDependencies(
				domain.DependencySpec{CommandName: "certbot", PackageName: "certbot"},
			),
			Files: []domain.FileTemplate{
				{
					Destination: "/etc/letsencrypt/cli.ini",
					Template:    mustTemplate("certbot_cli.ini.tmpl"),
				},
				{
					Destination: "/etc/letsencrypt/renewal-hooks/deploy/reload-services.sh",
					Template:    mustTemplate("certbot_reload.sh.tmpl"),
					Mode:        "755",
				},
			},
			Activate: [][]string{
				{
					"certbot", "certonly", "--webroot",
					"-w", "/var/www/{{ .Settings.domain }}",
					"-d", "{{ .Settings.domain }}",
					"--keep-until-expiring",
				},
			},
		},
		{
			Name:        "singbox",
			Description: "sing-box VLESS over TLS inbound using the certbot certificate",
			GeneratedSecrets: []domain.GeneratedSecret{
				{Key: "singbox.uuid", Kind: domain.SecretUUID},
			},
			Dependencies: domain.StaticDependencies(
				domain.DependencySpec{CommandName: "curl", PackageName: "curl"},
				domain.DependencySpec{CommandName: "bash", PackageName: "bash"},
			),
			Prepare: [][]string{
				{"sh", "-c", "command -v sing-box >/dev/null 2>&1 || curl -fsSL https://sing-box.app/install.sh | bash"},
			},
			Files: []domain.FileTemplate{
				{
					Destination: "/etc/sing-box/config.json",
					Template:    mustTemplate("singbox_config.json.tmpl"),
					Mode:        "600",
				},
			},
			Activate: [][]string{
				{"sing-box", "check", "-c", "/etc/sing-box/config.json"},
				{"systemctl", "enable", "sing-box"},
				{"systemctl", "restart", "sing-box"},
			},
		},
		{
			Name:         "docker",
			Description:  "Docker engine with log rotation",
			Dependencies: dockerDependencies,
			Files: []domain.FileTemplate{
				{
					Destination: "/etc/docker/daemon.json",
					Template:    mustTemplate("docker_daemon.json.tmpl"),
				},
			},
			Activate: [][]string{
				{"systemctl", "enable", "--now", "docker"},
				{"systemctl", "restart", "docker"},
			},
		},
		{
			Name:                 "harden",
			Description:          "SSH lockdown, ufw firewall, fail2ban and kernel network settings",
			RequiresDebianFamily: true,
			Dependencies: domain.StaticDependencies(
				domain.DependencySpec{CommandName: "ufw", PackageName: "ufw"},
				domain.DependencySpec{CommandName: "fail2ban-client", PackageName: "fail2ban"},
			),
			Files: []domain.FileTemplate{
				{
					Destination: "/etc/ssh/sshd_config.d/99-vpsup.conf",
					Template:    mustTemplate("sshd_hardening.conf.tmpl"),
					Mode:        "600",
				},
				{
					Destination: "/etc/fail2ban/jail.local",
					Template:    mustTemplate("fail2ban_jail.local.tmpl"),
				},
				{
					Destination: "/etc/sysctl.d/99-vpsup.conf",
					Template:    mustTemplate("sysctl_hardening.conf.tmpl"),
				},
			},
			Activate: [][]string{
				{"sshd", "-t"},
				{"systemctl", "reload", "ssh"},
				{"sysctl", "--system"},
				{"ufw", "allow", "{{ .Settings.ssh_port }}/tcp"},
				{"ufw", "allow", "80/tcp"},
				{"ufw", "allow", "443/tcp"},
				{"ufw", "allow", "{{ .Settings.singbox_port }}/tcp"},
				{"ufw", "--force", "enable"},
				{"systemctl", "enable", "--now", "fail2ban"},
			},
		},
	}
}

// Debian ships the engine as docker.io; the other families call it docker.
func dockerDependencies(release domain.OSRelease, _ string) []domain.DependencySpec {
	if release.IsDebianFamily() {
		return []domain.DependencySpec{{CommandName: "docker", PackageName: "docker.io"}}
	}
	return []domain.DependencySpec{{CommandName: "docker", PackageName: "docker"}}
}

type RecipeCatalog struct {
	configRepository ConfigRepository
	builtins         []domain.Recipe
}

func ProvideRecipeCatalog(configRepository ConfigRepository) *RecipeCatalog {
	return &RecipeCatalog{
		configRepository: configRepository,
		builtins:         builtinRecipes(),
	}
}

// List returns the built-in recipes sorted by name, followed by custom.
func (c *RecipeCatalog) List() []domain.Recipe {
	recipes := make([]domain.Recipe, len(c.builtins))
	copy(recipes, c.builtins)
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })
	return append(recipes, domain.Recipe{
		Name:        CustomRecipeName,
		Description: "dependencies and files listed in the config file",
	})
}

// Get returns the named recipe. The custom recipe is built from the config file.
func (c *RecipeCatalog) Get(name string) (domain.Recipe, error) {
	if name == CustomRecipeName {
		return c.customRecipe()
	}
	for _, recipe := range c.builtins {
		if recipe.Name == name {
			return recipe, nil
		}
	}
	names := make([]string, 0, len(c.builtins)+1)
	for _, recipe := range c.List() {
		names = append(names, recipe.Name)
	}
	return domain.Recipe{}, fmt.Errorf("unknown recipe '%s', available: %s", name, strings.Join(names, ", "))
}

func (c *RecipeCatalog) customRecipe() (domain.Recipe, error) {
	config, err := c.configRepository.LoadConfig()
	if err != nil {
		return domain.Recipe{}, err
	}
	return domain.Recipe{
		Name:         CustomRecipeName,
		Description:  "dependencies and files listed in the config file",
		Dependencies: domain.StaticDependencies(config.Dependencies...),
		Files:        config.Files,
	}, nil
}
