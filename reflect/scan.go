package reflect

import "github.com/gospv/spv/module"

// CollectReferencedVariables walks fn's body once, from OpFunction
// through OpFunctionEnd, and records into fn.ReferencedVariables every
// module-scope variable the body touches through OpAccessChain or
// OpLoad.
//
// Grounded exactly on the original decoder's collect_function_used_
// variables / _add_referenced_variable_by_id: only operand word 3 (the
// base of an access chain, or the pointer operand of a direct load) is
// inspected, and only when that id resolves to a Variable. A load whose
// pointer came from an access chain resolves to nothing here (the access
// chain's result id is never itself a Variable) and is silently a
// no-op — the access chain instruction is what records the reference.
// There is no recursive chase through a chain of access chains, and no
// attempt to interpret which member or array element was addressed:
// that is why descriptor_count is hard-coded to 1 elsewhere, not a bug.
func CollectReferencedVariables(mod *module.Module, fn *module.Function) {
	for _, ins := range fn.Body {
		if ins.Opcode != module.OpAccessChain && ins.Opcode != module.OpLoad {
			continue
		}
		if len(ins.Words) <= 3 {
			continue
		}
		baseID := ins.Words[3]
		v, ok := mod.IdInstruction(baseID)
		if !ok || v.Side.Kind != module.SideVariable {
			continue
		}
		fn.ReferencedVariables.Add(v.Side.Index)
	}
}
