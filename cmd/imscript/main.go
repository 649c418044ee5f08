// imscript - inspection tooling for the script binding surface.
//
// The binding catalogue is deliberately data-driven and enumerable; this
// tool walks it so hosts and test generators can see exactly what a
// script can call.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/hollis/imscript/assets"
	"github.com/hollis/imscript/bind"
	"github.com/hollis/imscript/manifest"
	"github.com/hollis/imscript/ui"
)

// discardResolver satisfies the asset service so the full callback surface
// registers; nothing here ever resolves content.
type discardResolver struct{}

func (discardResolver) AddRuntimeSource(string, *assets.MemorySource) {}

func fullRegistry() *bind.Registry {
	registry, _ := ui.NewRegistry(ui.NopBackend{})
	svc := assets.NewService(discardResolver{}, assets.StdCodec{})
	if err := svc.RegisterCallbacks(registry); err != nil {
		panic(err)
	}
	return registry
}

var (
	verbosity  int
	jsonOutput bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "imscript",
		Short: "Inspect the script binding surface",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "Log verbosity")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON")

	rootCmd.AddCommand(catalogueCmd(), slotsCmd(), enumsCmd(), manifestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type argInfo struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Optional bool   `json:"optional,omitempty"`
	Enum     string `json:"enum,omitempty"`
}

type functionInfo struct {
	Name  string    `json:"name"`
	Args  []argInfo `json:"args,omitempty"`
	Ret   string    `json:"ret"`
	Opens string    `json:"opens,omitempty"`
	Close string    `json:"closes,omitempty"`
}

func catalogueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogue",
		Short: "List every bound native function and its marshaling table",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := fullRegistry()
			slots := registry.Slots()

			var funcs []functionInfo
			for _, name := range registry.Names() {
				d := registry.Lookup(name)
				if d == nil {
					// name is bound to a callback; no descriptor to walk
					funcs = append(funcs, functionInfo{Name: name, Ret: "dynamic"})
					continue
				}
				info := functionInfo{Name: d.Name, Ret: d.Ret.String()}
				for _, a := range d.Args {
					ai := argInfo{Name: a.Name, Kind: a.Kind.String(), Optional: a.Optional}
					if a.Enum != nil {
						ai.Enum = a.Enum.Name()
					}
					info.Args = append(info.Args, ai)
				}
				if d.Open != nil {
					info.Opens = slots.Name(d.Open.Slot)
					if d.Open.Conditional {
						info.Opens += " (conditional)"
					}
				}
				if d.Close != nil {
					info.Close = slots.Name(d.Close.Slot)
					if d.Close.Unwind {
						info.Close += " (unwind)"
					}
				}
				funcs = append(funcs, info)
			}

			if jsonOutput {
				return printJSON(funcs)
			}
			for _, f := range funcs {
				fmt.Printf("%s(", f.Name)
				for i, a := range f.Args {
					if i > 0 {
						fmt.Print(", ")
					}
					fmt.Printf("%s: %s", a.Name, a.Kind)
					if a.Enum != "" {
						fmt.Printf("<%s>", a.Enum)
					}
					if a.Optional {
						fmt.Print("?")
					}
				}
				fmt.Printf(") -> %s", f.Ret)
				if f.Opens != "" {
					fmt.Printf("  opens %s", f.Opens)
				}
				if f.Close != "" {
					fmt.Printf("  closes %s", f.Close)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the end-stack slot table",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _ := ui.NewRegistry(ui.NopBackend{})
			slots := registry.Slots()
			if jsonOutput {
				names := make([]string, slots.Len())
				for i := range names {
					names[i] = slots.Name(bind.Slot(i))
				}
				return printJSON(names)
			}
			for i := 0; i < slots.Len(); i++ {
				fmt.Printf("%2d  %s\n", i, slots.Name(bind.Slot(i)))
			}
			return nil
		},
	}
}

func enumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums",
		Short: "List every enum table and its constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := ui.EnumTables()
			names := make([]string, 0, len(tables))
			for name := range tables {
				names = append(names, name)
			}
			sort.Strings(names)

			if jsonOutput {
				out := make(map[string][]string, len(tables))
				for _, name := range names {
					out[name] = tables[name].Names()
				}
				return printJSON(out)
			}
			for _, name := range names {
				t := tables[name]
				fmt.Printf("%s (%d constants)\n", name, t.Len())
				for _, c := range t.Names() {
					v, _ := t.Lookup(c)
					fmt.Printf("  %-32s %d\n", c, v)
				}
			}
			return nil
		},
	}
}

func manifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest [dir]",
		Short: "Locate and print the imscript.toml host configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			m, err := manifest.FindAndLoad(dir)
			if err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("no imscript.toml found from %s upward", dir)
			}
			if jsonOutput {
				return printJSON(m)
			}
			fmt.Printf("project:  %s %s\n", m.Project.Name, m.Project.Version)
			fmt.Printf("assets:   %q mounted at %s\n", m.Assets.SourceName, m.Assets.Mount)
			fmt.Printf("location: %s\n", m.Dir)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
