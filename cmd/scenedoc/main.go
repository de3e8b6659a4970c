// Command scenedoc validates, formats and plays scene documents without a
// window.
//
// Usage:
//
//	scenedoc check [-config editor.yaml] scene.json...
//	scenedoc fmt [-w] scene.json
//	scenedoc kinds
//	scenedoc play [-config editor.yaml] [-grant perm,...] -script run.json scene.json
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/phanxgames/scenedoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "fmt":
		fmtCmd(os.Args[2:])
	case "kinds":
		kindsCmd()
	case "play":
		playCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "scenedoc CLI\n\nUsage:\n  scenedoc check [-config editor.yaml] scene.json...\n  scenedoc fmt [-w] scene.json\n  scenedoc kinds\n  scenedoc play [-config editor.yaml] [-grant perm,...] -script run.json scene.json")
}

// newDocument builds a sealed catalog and an empty document, optionally
// configured from a YAML file. Resource load failures are reported but not
// fatal: the document model does not need them.
func newDocument(configPath string) *scenedoc.Document {
	cat := scenedoc.NewCatalog()
	cat.Seal()
	if configPath == "" {
		return scenedoc.NewDocument(cat)
	}
	cfg, err := scenedoc.LoadConfig(configPath)
	if err != nil {
		fatalf("%v", err)
	}
	doc, err := cfg.Apply(cat)
	if err != nil {
		warnf("%v", err)
	}
	return doc
}

func loadDocument(doc *scenedoc.Document, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return doc.Load(data)
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var configPath string
	fs.StringVar(&configPath, "config", "", "editor config (YAML)")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range fs.Args() {
		doc := newDocument(configPath)
		if err := loadDocument(doc, path); err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "[scenedoc] %s: %v\n", path, err)
			var ke *scenedoc.KindError
			if errors.As(err, &ke) && ke.Kind != "" {
				fmt.Fprintf(os.Stderr, "[scenedoc] %s: known %s kinds: %s\n",
					path, ke.Registry, strings.Join(knownKinds(doc.Catalog(), ke.Registry), ", "))
			}
			continue
		}
		if dups := doc.DuplicateIDs(); len(dups) > 0 {
			failed = true
			fmt.Fprintf(os.Stderr, "[scenedoc] %s: duplicate ids: %s\n", path, strings.Join(dups, ", "))
			continue
		}
		fmt.Printf("%s: ok (%d components)\n", path, doc.Len())
	}
	if failed {
		os.Exit(1)
	}
}

func knownKinds(cat *scenedoc.Catalog, registry string) []string {
	switch registry {
	case cat.Components.Name():
		return cat.Components.Kinds()
	case cat.Actions.Name():
		return cat.Actions.Kinds()
	case cat.Conditions.Name():
		return cat.Conditions.Kinds()
	}
	return nil
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var write bool
	fs.BoolVar(&write, "w", false, "write result to the source file instead of stdout")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	doc := newDocument("")
	if err := loadDocument(doc, path); err != nil {
		fatalf("%s: %v", path, err)
	}
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		fatalf("%s: %v", path, err)
	}
	if !write {
		_, _ = os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		fatalf("writing %s: %v", path, err)
	}
}

func kindsCmd() {
	cat := scenedoc.NewCatalog()
	for _, r := range []interface {
		Name() string
		Kinds() []string
	}{cat.Components, cat.Actions, cat.Conditions} {
		fmt.Printf("%s:\n", r.Name())
		for _, k := range r.Kinds() {
			fmt.Printf("  %s\n", k)
		}
	}
}

func playCmd(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var configPath, scriptPath, grant string
	fs.StringVar(&configPath, "config", "", "editor config (YAML)")
	fs.StringVar(&scriptPath, "script", "", "preview script (JSON)")
	fs.StringVar(&grant, "grant", "", "comma-separated permissions granted to the viewer")
	_ = fs.Parse(args)
	if fs.NArg() != 1 || scriptPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	doc := newDocument(configPath)
	if err := loadDocument(doc, fs.Arg(0)); err != nil {
		fatalf("%s: %v", fs.Arg(0), err)
	}
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		fatalf("%v", err)
	}
	runner, err := scenedoc.LoadScript(data)
	if err != nil {
		fatalf("%v", err)
	}

	p := scenedoc.NewPlayer(doc, effectPrinter{})
	for _, perm := range strings.Split(grant, ",") {
		if perm = strings.TrimSpace(perm); perm != "" {
			p.Grant(perm)
		}
	}
	if err := runner.Run(p); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("script passed after %d ticks\n", p.Ticks())
}

// effectPrinter prints every effect as one line on stdout.
type effectPrinter struct{}

func (effectPrinter) EmitEffect(e scenedoc.Effect) {
	switch e.Type {
	case scenedoc.EffectCommand:
		fmt.Printf("%s: command %q console=%t silent=%t\n", e.Owner, e.Command, e.AsConsole, e.Silent)
	case scenedoc.EffectMessage:
		fmt.Printf("%s: message %q\n", e.Owner, e.Message)
	case scenedoc.EffectSwitchView:
		fmt.Printf("%s: view %q target=%q\n", e.Owner, e.View, e.Target)
	case scenedoc.EffectGifControl:
		fmt.Printf("%s: gif %q play=%t restart=%t\n", e.Owner, e.Target, e.Play, e.Restart)
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[scenedoc] warning: "+format+"\n", args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[scenedoc] "+format+"\n", args...)
	os.Exit(1)
}
