package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/benaskins/loom/internal/prefs"
)

var prefCmd = &cobra.Command{
	Use:   "pref",
	Short: "Manage stored preferences",
}

// parsePrefValue interprets a CLI argument as a preference value: valid
// JSON is stored in its decoded shape, anything else as a plain string.
// `loom pref set size 14` stores the integer 14; `loom pref set theme
// dark` stores the string "dark".
func parsePrefValue(arg string) prefs.Value {
	v, err := prefs.Decode(arg)
	if err != nil {
		return prefs.String(arg)
	}
	return v
}

var prefSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a preference",
	Long:  "Store a preference. The value is parsed as JSON when possible (14, true, [1,2]), otherwise stored as a string.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Set(args[0], parsePrefValue(args[1])); err != nil {
			return err
		}
		fmt.Printf("Preference %q set\n", args[0])
		return nil
	},
}

var prefGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read a preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		def := prefs.Null
		if defArg, _ := cmd.Flags().GetString("default"); defArg != "" {
			def = parsePrefValue(defArg)
		}

		var val prefs.Value
		if asArg, _ := cmd.Flags().GetString("as"); asArg != "" {
			want, err := prefs.ParseKind(asArg)
			if err != nil {
				return err
			}
			val, err = store.GetAs(args[0], def, want)
			if err != nil {
				return err
			}
		} else {
			val, err = store.Get(args[0], def)
			if err != nil {
				return err
			}
		}

		fmt.Println(val)
		return nil
	},
}

var prefDeleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Short:   "Remove a preference",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		existed, err := store.Delete(args[0])
		if err != nil {
			return err
		}
		if existed {
			fmt.Printf("Preference %q deleted\n", args[0])
		} else {
			fmt.Printf("Preference %q was not set\n", args[0])
		}
		return nil
	},
}

var prefListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all preferences",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		all, err := store.All()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No preferences stored")
			return nil
		}

		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE")
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", k, all[k])
		}
		w.Flush()
		return nil
	},
}

var prefClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.Clear()
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d preference(s)\n", count)
		return nil
	},
}

func init() {
	prefGetCmd.Flags().String("default", "", "value returned when the key is not set")
	prefGetCmd.Flags().String("as", "", "coerce the value (bool, int, float, string)")
	prefCmd.AddCommand(prefSetCmd)
	prefCmd.AddCommand(prefGetCmd)
	prefCmd.AddCommand(prefDeleteCmd)
	prefCmd.AddCommand(prefListCmd)
	prefCmd.AddCommand(prefClearCmd)
	rootCmd.AddCommand(prefCmd)
}
