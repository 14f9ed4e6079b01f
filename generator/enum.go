package generator

import (
	"fmt"

	"google.golang.org/protobuf/compiler/protogen"
)

// genEnum emits an int32 based enum type with its name tables. Aliases
// (values sharing a number) get a constant but no entry in <Enum>_name.
func (fg *FileGen) genEnum(enum *protogen.Enum) {
	name := enum.GoIdent.GoName
	vars := Vars{"enum": name, "full_name": string(enum.Desc.FullName())}
	pv(fg, vars,
		"// $enum$ is the $full_name$ enum.",
		"type $enum$ int32",
		"",
		"const (")
	for _, value := range enum.Values {
		fg.P("\t", value.GoIdent.GoName, " ", name, " = ", fmt.Sprint(value.Desc.Number()))
	}
	fg.P(")")
	fg.P()

	pv(fg, vars, "var $enum$_name = map[int32]string{")
	seen := map[int32]bool{}
	for _, value := range enum.Values {
		num := int32(value.Desc.Number())
		if seen[num] {
			continue
		}
		seen[num] = true
		fg.P("\t", num, ": ", fmt.Sprintf("%q", value.Desc.Name()), ",")
	}
	fg.P("}")
	fg.P()

	pv(fg, vars, "var $enum$_value = map[string]int32{")
	for _, value := range enum.Values {
		fg.P("\t", fmt.Sprintf("%q", value.Desc.Name()), ": ", value.Desc.Number(), ",")
	}
	fg.P("}")
	fg.P()

	pv(fg, vars.With("itoa", fg.ident(strconvPackage.Ident("Itoa"))),
		"func (x $enum$) String() string {",
		"\tif name, ok := $enum$_name[int32(x)]; ok {",
		"\t\treturn name",
		"\t}",
		"\treturn $itoa$(int(x))",
		"}",
		"")
}
