package typescript

import (
	"strings"

	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/typegen/util"
)

// renderFunction returns one declaration line for fn, or "" with ok=false
// when "className.fn.Name" is on the ignore list.
//
//	static getForm(formId: number): Form;
//	moveTo(akTarget: ObjectReference): Promise<void>;
func (e *Emitter) renderFunction(className string, fn catalogue.FunctionRecord, static bool) (line string, ok bool, err error) {
	if e.tables.ignored[className+"."+fn.Name] {
		return "", false, nil
	}

	name := e.tables.rename(fn.Name)

	var sb strings.Builder
	sb.WriteString(e.opts.Indent)
	if static {
		sb.WriteString("static ")
	}
	sb.WriteString(util.PrettifyMember(name))
	sb.WriteString("(")

	for i, arg := range fn.Arguments {
		argType, overridden := e.tables.argumentType(name, i)
		if !overridden {
			argType, err = e.mapper.MapType(arg.Type)
			if err != nil {
				return "", false, errors.Wrapf(err, "argument %s of %s.%s", arg.Name, className, fn.Name)
			}
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Name)
		sb.WriteString(": ")
		sb.WriteString(argType)
	}

	returnType, err := e.mapper.MapType(fn.ReturnType)
	if err != nil {
		return "", false, errors.Wrapf(err, "return type of %s.%s", className, fn.Name)
	}
	if fn.IsLatent {
		returnType = "Promise<" + returnType + ">"
	}

	sb.WriteString("): ")
	sb.WriteString(returnType)
	sb.WriteString(";\n")
	return sb.String(), true, nil
}
