package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/errors"
)

func arg(name string, raw catalogue.RawType) catalogue.Argument {
	return catalogue.Argument{Name: name, Type: catalogue.TypeDescriptor{RawType: raw}}
}

func objectArg(name, typeName string) catalogue.Argument {
	return catalogue.Argument{Name: name, Type: catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: typeName}}
}

func returns(raw catalogue.RawType) catalogue.TypeDescriptor {
	return catalogue.TypeDescriptor{RawType: raw}
}

func TestRenderFunction(t *testing.T) {
	e := NewEmitter(testCatalogue("Form", "ObjectReference", "Actor"), DefaultOptions())

	tests := []struct {
		name   string
		class  string
		fn     catalogue.FunctionRecord
		static bool
		want   string
	}{
		{
			name:  "no arguments",
			class: "Actor",
			fn:    catalogue.FunctionRecord{Name: "IsDead", ReturnType: returns(catalogue.RawBool)},
			want:  "    isDead(): boolean;\n",
		},
		{
			name:   "static with arguments",
			class:  "Game",
			fn:     catalogue.FunctionRecord{Name: "GetFormEx", Arguments: []catalogue.Argument{arg("formId", catalogue.RawInt)}, ReturnType: catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "Form"}},
			static: true,
			want:   "    static getFormEx(formId: number): Form;\n",
		},
		{
			name:  "arguments in declaration order",
			class: "ObjectReference",
			fn: catalogue.FunctionRecord{
				Name: "SetPosition",
				Arguments: []catalogue.Argument{
					arg("x", catalogue.RawFloat),
					arg("y", catalogue.RawFloat),
					objectArg("target", "ObjectReference"),
					arg("names", catalogue.RawStringArray),
				},
				ReturnType: returns(catalogue.RawNone),
			},
			want: "    setPosition(x: number, y: number, target: ObjectReference, names: string[]): void;\n",
		},
		{
			name:  "latent Int returns a promise",
			class: "Utility",
			fn:    catalogue.FunctionRecord{Name: "Wait", Arguments: []catalogue.Argument{arg("seconds", catalogue.RawFloat)}, ReturnType: returns(catalogue.RawInt), IsLatent: true},
			want:  "    wait(seconds: number): Promise<number>;\n",
		},
		{
			name:  "latent None returns Promise<void>",
			class: "ObjectReference",
			fn:    catalogue.FunctionRecord{Name: "MoveTo", Arguments: []catalogue.Argument{objectArg("akTarget", "ObjectReference")}, ReturnType: returns(catalogue.RawNone), IsLatent: true},
			want:  "    moveTo(akTarget: ObjectReference): Promise<void>;\n",
		},
		{
			name:   "rename table",
			class:  "Game",
			fn:     catalogue.FunctionRecord{Name: "getplayer", ReturnType: catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "Actor"}},
			static: true,
			want:   "    static getPlayer(): Actor;\n",
		},
		{
			name:  "all caps name is lowered",
			class: "Actor",
			fn:    catalogue.FunctionRecord{Name: "GETACTORVALUE", Arguments: []catalogue.Argument{arg("name", catalogue.RawString)}, ReturnType: returns(catalogue.RawFloat)},
			want:  "    getactorvalue(name: string): number;\n",
		},
		{
			name:  "setMotionType first argument is the enum",
			class: "ObjectReference",
			fn: catalogue.FunctionRecord{
				Name:       "SetMotionType",
				Arguments:  []catalogue.Argument{arg("aiMotionType", catalogue.RawInt), arg("abAllowActivate", catalogue.RawBool)},
				ReturnType: returns(catalogue.RawNone),
				IsLatent:   true,
			},
			want: "    setMotionType(aiMotionType: MotionType, abAllowActivate: boolean): Promise<void>;\n",
		},
		{
			name:  "setMotionType override ignores the declared tag",
			class: "ObjectReference",
			fn: catalogue.FunctionRecord{
				Name:       "setmotiontype",
				Arguments:  []catalogue.Argument{arg("value", "NotARealTag")},
				ReturnType: returns(catalogue.RawNone),
			},
			want: "    setmotiontype(value: MotionType): void;\n",
		},
		{
			name:  "override only applies to position zero",
			class: "ObjectReference",
			fn: catalogue.FunctionRecord{
				Name:       "SetMotionType",
				Arguments:  []catalogue.Argument{arg("first", catalogue.RawString), arg("second", catalogue.RawInt)},
				ReturnType: returns(catalogue.RawNone),
			},
			want: "    setMotionType(first: MotionType, second: number): void;\n",
		},
		{
			name:  "similar names are not overridden",
			class: "ObjectReference",
			fn: catalogue.FunctionRecord{
				Name:       "GetMotionType",
				Arguments:  []catalogue.Argument{arg("value", catalogue.RawInt)},
				ReturnType: returns(catalogue.RawInt),
			},
			want: "    getMotionType(value: number): number;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok, err := e.renderFunction(tt.class, tt.fn, tt.static)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestRenderFunctionIgnored(t *testing.T) {
	e := NewEmitter(testCatalogue(), DefaultOptions())

	line, ok, err := e.renderFunction("TESModPlatform", catalogue.FunctionRecord{Name: "Add", ReturnType: returns("Broken")}, true)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, line)

	_, ok, err = e.renderFunction("Game", catalogue.FunctionRecord{Name: "Add", ReturnType: returns(catalogue.RawNone)}, true)
	require.NoError(t, err)
	assert.True(t, ok, "ignore entries are qualified by class")
}

func TestRenderFunctionUnknownTag(t *testing.T) {
	e := NewEmitter(testCatalogue(), DefaultOptions())

	_, _, err := e.renderFunction("Actor", catalogue.FunctionRecord{Name: "GetRace", ReturnType: returns("Struct")}, false)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownTypeTag(err))
	assert.Contains(t, err.Error(), "Actor.GetRace")

	_, _, err = e.renderFunction("Actor", catalogue.FunctionRecord{Name: "SetRace", Arguments: []catalogue.Argument{arg("race", "Struct")}, ReturnType: returns(catalogue.RawNone)}, false)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownTypeTag(err))
	assert.Contains(t, err.Error(), "argument race of Actor.SetRace")
}

func TestRenderFunctionCustomTables(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent = "\t"
	opts.Renames = append(opts.Renames, Rename{From: "getformex", To: "getFormEx"})
	opts.ArgumentOverrides = append(opts.ArgumentOverrides, ArgumentOverride{Function: "SendAnimationEvent", Position: 1, Type: "AnimationEvent"})
	e := NewEmitter(testCatalogue(), opts)

	line, ok, err := e.renderFunction("Game", catalogue.FunctionRecord{Name: "getformex", ReturnType: returns(catalogue.RawNone)}, true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "\tstatic getFormEx(): void;\n", line)

	line, _, err = e.renderFunction("Debug", catalogue.FunctionRecord{
		Name:       "sendAnimationEvent",
		Arguments:  []catalogue.Argument{objectArg("refr", "ObjectReference"), arg("event", catalogue.RawString)},
		ReturnType: returns(catalogue.RawNone),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "\tstatic sendAnimationEvent(refr: Form, event: AnimationEvent): void;\n", line)
}
