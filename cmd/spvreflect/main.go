// Command spvreflect decodes a SPIR-V shader module and prints its
// pipeline-layout reflection: descriptor set layout bindings and
// push-constant ranges.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gospv/spv"
)

func usage() {
	fmt.Fprintf(os.Stderr, `spvreflect - SPIR-V pipeline layout reflection

Usage:
  spvreflect [flags] <shader.spv>

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  spvreflect shader.frag.spv
  spvreflect -format yaml -strict shader.vert.spv
`)
}

func main() {
	format := flag.String("format", "json", "output format: text, json, or yaml")
	strict := flag.Bool("strict", false, "fail on decoration groups instead of skipping them")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	opts := spv.DefaultOptions()
	opts.Strict = *strict

	mod, perr := spv.ParseFile(path, opts)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		os.Exit(2)
	}

	info, perr := spv.Reflect(mod)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		os.Exit(2)
	}

	if err := printInfo(info, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func printInfo(info *spv.PipelineInfo, format string) error {
	switch format {
	case "json":
		out, err := spv.ToJSON(info)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := spv.ToYAML(info)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "text":
		printText(info)
	default:
		return fmt.Errorf("unknown -format %q (want text, json, or yaml)", format)
	}
	return nil
}

func printText(info *spv.PipelineInfo) {
	for _, set := range info.DescriptorSets {
		fmt.Printf("set %d:\n", set.Set)
		for _, binding := range set.Bindings {
			fmt.Printf("  binding %d: type=%d count=%d stages=0x%x\n",
				binding.Binding, binding.DescriptorType, binding.DescriptorCount, binding.StageFlags)
		}
	}
	for _, pc := range info.PushConstants {
		fmt.Printf("push constant: offset=%d size=%d stages=0x%x\n", pc.Offset, pc.Size, pc.StageFlags)
	}
}
