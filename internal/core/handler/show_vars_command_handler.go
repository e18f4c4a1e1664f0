package handler

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"vpsup/internal/core"
)

type ShowVarsCommandHandler struct {
	secretsRepository core.SecretsRepository
	configRepository  core.ConfigRepository
}

func ProvideShowVarsCommandHandler(
	secretsRepository core.SecretsRepository,
	configRepository core.ConfigRepository,
) ShowVarsCommandHandler {
	return ShowVarsCommandHandler{
		secretsRepository: secretsRepository,
		configRepository:  configRepository,
	}
}

// Handle prints the values templates are rendered with. Secret values are
// masked unless reveal is set.
func (h *ShowVarsCommandHandler) Handle(reveal bool) error {
	values, err := core.CreateTemplatingValues(h.configRepository, h.secretsRepository)
	if err != nil {
		return err
	}

	printValues(os.Stdout, values, 0, false, reveal)
	return nil
}

func printValues(w io.Writer, values map[string]interface{}, indent int, hidden bool, reveal bool) {
	indentString := strings.Repeat(" ", indent)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch value := values[key].(type) {
		case string:
			if hidden && !reveal {
				fmt.Fprintf(w, "%s%s: ******\n", indentString, key)
			} else {
				fmt.Fprintf(w, "%s%s: %s\n", indentString, key, value)
			}
		case map[string]string:
			fmt.Fprintf(w, "%s%s:\n", indentString, key)
			nested := make(map[string]interface{}, len(value))
			for k, v := range value {
				nested[k] = v
			}
			printValues(w, nested, indent+2, hidden, reveal)
		case map[string]interface{}:
			fmt.Fprintf(w, "%s%s:\n", indentString, key)
			printValues(w, value, indent+2, hidden || (indent == 0 && key == "Secrets"), reveal)
		default:
			fmt.Fprintf(w, "%s%s: %v\n", indentString, key, value)
		}
	}
}
