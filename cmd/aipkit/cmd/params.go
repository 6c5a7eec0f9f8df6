package cmd

import (
	"fmt"

	"github.com/openarchive/aipkit/pkg/taskconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// resolvedParams is the printable form of a resolved parameter set.
type resolvedParams struct {
	Module     string            `yaml:"module"`
	Task       string            `yaml:"task"`
	Recursive  bool              `yaml:"recursiveMode"`
	Workflow   bool              `yaml:"useWorkflow"`
	Template   bool              `yaml:"useCollectionTemplate"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

var paramsCmd = &cobra.Command{
	Use:   "params MODULE TASK",
	Short: "Show the packaging parameters resolved from configuration",
	Long: `Show the packaging parameters a task would receive from the loaded
configuration. Entries follow the shape

  <module>.<task>.<option> = <value>

Unrecognized options appear under properties, verbatim.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		module, task := args[0], args[1]

		p, ok := taskconfig.Resolve(taskconfig.NewViperProperties(nil), module, task)
		if !ok {
			wrapFatalln("no configuration entries for module "+module, nil)
			return
		}

		out, err := yaml.Marshal(resolvedParams{
			Module:     module,
			Task:       task,
			Recursive:  p.Recursive,
			Workflow:   p.Workflow,
			Template:   p.CollectionTemplate,
			Properties: p.Properties(),
		})
		if err != nil {
			wrapFatalln("render parameters", err)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}
