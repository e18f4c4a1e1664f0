package core

import (
	"fmt"
	"net"
	"net/url"
)

// SingboxShareLink builds the VLESS client link for the sing-box recipe from
// the templating values.
func SingboxShareLink(values map[string]interface{}) (string, error) {
	settings, _ := values["Settings"].(map[string]string)
	secrets, _ := values["Secrets"].(map[string]interface{})
	singbox, _ := secrets["singbox"].(map[string]interface{})
	userID, _ := singbox["uuid"].(string)

	domainName := settings["domain"]
	port := settings["singbox_port"]
	if domainName == "" || port == "" || userID == "" {
		return "", fmt.Errorf("share link needs Settings.domain, Settings.singbox_port and Secrets.singbox.uuid")
	}

	query := url.Values{}
	query.Set("encryption", "none")
	query.Set("security", "tls")
	query.Set("sni", domainName)
	query.Set("type", "tcp")

	link := url.URL{
		Scheme:   "vless",
		User:     url.User(userID),
		Host:     net.JoinHostPort(domainName, port),
		RawQuery: query.Encode(),
		Fragment: "vpsup-" + domainName,
	}
	return link.String(), nil
}
