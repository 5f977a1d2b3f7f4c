// Command spvdis prints a human-readable, .spvasm-like disassembly of a
// SPIR-V module: the header fields followed by one line per instruction.
// It is a diagnostic tool, not part of pipeline reflection proper — it
// walks the decoder's own instruction index rather than parsing words a
// second time.
package main

import (
	"fmt"
	"os"

	"github.com/gospv/spv/decode"
	"github.com/gospv/spv/module"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: spvdis <shader.spv>\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvdis: %v\n", err)
		os.Exit(1)
	}

	hdr, instrs, perr := decode.ScanRaw(data)
	if perr != nil {
		fmt.Fprintf(os.Stderr, "spvdis: %v\n", perr)
		os.Exit(2)
	}

	fmt.Println("; SPIR-V")
	fmt.Printf("; Version: %d.%d\n", (hdr.Version>>16)&0xff, (hdr.Version>>8)&0xff)
	fmt.Printf("; Generator: 0x%08x\n", hdr.Generator)
	fmt.Printf("; Bound: %d\n", hdr.Bound)
	fmt.Println("; Schema: 0")

	for _, ins := range instrs {
		printInstruction(ins)
	}
}

func id(n uint32) string {
	return fmt.Sprintf("%%%d", n)
}

// operandWords returns ins's operands, i.e. every word after the opcode
// header word.
func operandWords(ins module.Instruction) []uint32 {
	if len(ins.Words) <= 1 {
		return nil
	}
	return ins.Words[1:]
}

// printInstruction renders one instruction as a single disassembly line.
// Opcodes special-cased here or in printGenericInstruction that name a
// result id print "%n = OpFoo ...operands"; every other opcode prints
// "OpFoo ...operands". A handful of opcodes get friendlier operand
// rendering (named enumerants instead of raw integers); everything else
// falls through to the generic form in printGenericInstruction, which
// still renders opcode names through module.Opcode's own table instead
// of a second local one.
func printInstruction(ins module.Instruction) {
	ops := operandWords(ins)
	name := ins.Opcode.String()

	switch ins.Opcode {
	case module.OpCapability:
		fmt.Printf("%s %s\n", name, module.Capability(ops[0]))
		return
	case module.OpMemoryModel:
		fmt.Printf("%s %s %s\n", name,
			module.AddressingModel(ops[0]), module.MemoryModelKind(ops[1]))
		return
	case module.OpEntryPoint:
		execModel := module.ExecutionModel(ops[0])
		entryID := ops[1]
		nameStr, nameWordLen := readDisasmString(ins.Words, 3)
		refs := ins.Words[3+nameWordLen:]
		fmt.Printf("%s %s %s %q", name, execModel, id(entryID), nameStr)
		for _, r := range refs {
			fmt.Printf(" %s", id(r))
		}
		fmt.Println()
		return
	case module.OpExecutionMode:
		fmt.Printf("%s %s %s\n", name, id(ops[0]), module.ExecutionModeKind(ops[1]))
		return
	case module.OpName:
		s, _ := readDisasmString(ins.Words, 2)
		fmt.Printf("%s %s %q\n", name, id(ops[0]), s)
		return
	case module.OpMemberName:
		s, _ := readDisasmString(ins.Words, 3)
		fmt.Printf("%s %s %d %q\n", name, id(ops[0]), ops[1], s)
		return
	case module.OpDecorate:
		fmt.Printf("%s %s %s", name, id(ops[0]), module.DecorationKind(ops[1]))
		printDecorationOperands(module.DecorationKind(ops[1]), ops[2:])
		return
	case module.OpMemberDecorate:
		fmt.Printf("%s %s %d %s", name, id(ops[0]), ops[1], module.DecorationKind(ops[2]))
		printDecorationOperands(module.DecorationKind(ops[2]), ops[3:])
		return
	case module.OpTypeVoid, module.OpTypeBool:
		fmt.Printf("%s = %s\n", id(ops[0]), name)
		return
	case module.OpTypeInt:
		fmt.Printf("%s = %s %d %d\n", id(ops[0]), name, ops[1], ops[2])
		return
	case module.OpTypeFloat:
		fmt.Printf("%s = %s %d\n", id(ops[0]), name, ops[1])
		return
	case module.OpTypeVector:
		fmt.Printf("%s = %s %s %d\n", id(ops[0]), name, id(ops[1]), ops[2])
		return
	case module.OpTypePointer:
		fmt.Printf("%s = %s %s %s\n", id(ops[0]), name, module.StorageClass(ops[1]), id(ops[2]))
		return
	case module.OpVariable:
		fmt.Printf("%s = %s %s %s", id(ops[1]), name, id(ops[0]), module.StorageClass(ops[2]))
		if len(ops) > 3 {
			fmt.Printf(" %s", id(ops[3]))
		}
		fmt.Println()
		return
	}

	printGenericInstruction(ins, ops, name)
}

// printDecorationOperands renders a decoration's trailing operands,
// special-casing BuiltIn (whose single operand is itself an enumerant)
// and otherwise printing raw integers.
func printDecorationOperands(kind module.DecorationKind, ops []uint32) {
	if kind == module.DecorationBuiltIn && len(ops) == 1 {
		fmt.Printf(" %s\n", module.BuiltIn(ops[0]))
		return
	}
	for _, o := range ops {
		fmt.Printf(" %d", o)
	}
	fmt.Println()
}

// printGenericInstruction is the fallback for opcodes with no
// special-cased rendering above. The opcodes listed in its switch print
// their result id and operands in a known shape; any other opcode prints
// its name followed by its raw operand words, with no result id split
// out.
func printGenericInstruction(ins module.Instruction, ops []uint32, name string) {
	switch ins.Opcode {
	case module.OpFunction:
		fmt.Printf("%s = %s %s %d %s\n", id(ops[1]), name, id(ops[0]), ops[2], id(ops[3]))
	case module.OpFunctionEnd, module.OpReturn:
		fmt.Println(name)
	case module.OpLabel:
		fmt.Printf("%s = %s\n", id(ops[0]), name)
	case module.OpAccessChain, module.OpLoad:
		fmt.Printf("%s = %s %s", id(ops[1]), name, id(ops[0]))
		for _, o := range ops[2:] {
			fmt.Printf(" %s", id(o))
		}
		fmt.Println()
	case module.OpTypeStruct:
		fmt.Printf("%s = %s", id(ops[0]), name)
		for _, o := range ops[1:] {
			fmt.Printf(" %s", id(o))
		}
		fmt.Println()
	case module.OpTypeArray:
		fmt.Printf("%s = %s %s %s\n", id(ops[0]), name, id(ops[1]), id(ops[2]))
	case module.OpTypeFunction:
		fmt.Printf("%s = %s", id(ops[0]), name)
		for _, o := range ops[1:] {
			fmt.Printf(" %s", id(o))
		}
		fmt.Println()
	case module.OpConstant:
		fmt.Printf("%s = %s %s", id(ops[1]), name, id(ops[0]))
		for _, o := range ops[2:] {
			fmt.Printf(" %d", o)
		}
		fmt.Println()
	default:
		fmt.Printf("%s", name)
		for _, o := range ops {
			fmt.Printf(" %d", o)
		}
		fmt.Println()
	}
}

// readDisasmString mirrors decode's own literal-string reader. It is
// kept as a tiny unexported copy rather than exported from decode, since
// nothing outside string-bearing instructions (OpEntryPoint, OpName,
// OpMemberName) needs to decode string literals once the Section
// Decoder has already consumed them.
func readDisasmString(words []uint32, start int) (string, int) {
	var buf []byte
	wordLen := 0
	for i := start; i < len(words); i++ {
		wordLen++
		w := words[i]
		bytes4 := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
		terminated := false
		for _, b := range bytes4 {
			if b == 0 {
				terminated = true
				break
			}
			buf = append(buf, b)
		}
		if terminated {
			break
		}
	}
	return string(buf), wordLen
}
