// Package loader validates a parsed IPPcode23 XML document and produces
// the ordered instruction list the machine executes. XML parsing itself
// is treated as an external, swappable concern — this package uses the
// standard library's encoding/xml decoder purely as a tokenizer and owns
// every structural validation rule in spec §4.1.
package loader

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

var allowedRootAttrs = map[string]bool{"language": true, "name": true, "description": true}

var argElemIndex = map[string]int{"arg1": 0, "arg2": 1, "arg3": 2}

// Load reads a complete IPPcode23 XML document from r and returns its
// instructions ordered by the `order` attribute ascending.
func Load(r io.Reader) ([]program.Instruction, error) {
	dec := xml.NewDecoder(r)

	seenRoot := false
	seenOrders := map[int]bool{}
	var insts []program.Instruction

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, diag.XMLParsef("malformed XML: %v", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !seenRoot {
			if err := validateRoot(start); err != nil {
				return nil, err
			}
			seenRoot = true
			continue
		}

		if start.Name.Local != "instruction" {
			return nil, diag.Structuref("unexpected element <%s>, expected <instruction>", start.Name.Local)
		}

		inst, err := decodeInstruction(dec, start)
		if err != nil {
			return nil, err
		}
		if seenOrders[inst.Order] {
			return nil, diag.Structuref("duplicate instruction order %d", inst.Order)
		}
		seenOrders[inst.Order] = true
		insts = append(insts, inst)
	}

	if !seenRoot {
		return nil, diag.Structuref("missing root <program> element")
	}

	sort.Slice(insts, func(i, j int) bool { return insts[i].Order < insts[j].Order })
	return insts, nil
}

func validateRoot(start xml.StartElement) error {
	if start.Name.Local != "program" {
		return diag.Structuref("root element must be <program>, got <%s>", start.Name.Local)
	}

	var language string
	var haveLanguage bool
	for _, a := range start.Attr {
		if !allowedRootAttrs[a.Name.Local] {
			return diag.Structuref("unsupported attribute %q on <program>", a.Name.Local)
		}
		if a.Name.Local == "language" {
			language = a.Value
			haveLanguage = true
		}
	}
	if !haveLanguage {
		return diag.Structuref("missing required attribute 'language' on <program>")
	}
	if strings.ToUpper(language) != "IPPCODE23" {
		return diag.Structuref("unsupported language %q, expected IPPcode23", language)
	}
	return nil
}

func decodeInstruction(dec *xml.Decoder, start xml.StartElement) (program.Instruction, error) {
	var orderText, opcodeText string
	var haveOrder, haveOpcode bool
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "order":
			orderText, haveOrder = a.Value, true
		case "opcode":
			opcodeText, haveOpcode = a.Value, true
		default:
			return program.Instruction{}, diag.Structuref("unsupported attribute %q on <instruction>", a.Name.Local)
		}
	}
	if !haveOrder || !haveOpcode {
		return program.Instruction{}, diag.Structuref("<instruction> requires 'order' and 'opcode' attributes")
	}

	order, err := strconv.Atoi(orderText)
	if err != nil || order <= 0 {
		return program.Instruction{}, diag.Structuref("invalid instruction order %q, must be a positive integer", orderText)
	}

	opcodeName := strings.ToUpper(opcodeText)
	opcode, ok := program.LookupOpcode(opcodeName)
	if !ok {
		return program.Instruction{}, diag.Structuref("unrecognized opcode %q", opcodeText)
	}

	var slots [3]*program.Arg
	for {
		tok, err := dec.Token()
		if err != nil {
			return program.Instruction{}, diag.XMLParsef("malformed XML: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			idx, ok := argElemIndex[t.Name.Local]
			if !ok {
				return program.Instruction{}, diag.Structuref("unexpected element <%s> inside <instruction>", t.Name.Local)
			}
			if slots[idx] != nil {
				return program.Instruction{}, diag.Structuref("duplicate <%s> element", t.Name.Local)
			}
			arg, err := decodeArg(dec, t)
			if err != nil {
				return program.Instruction{}, err
			}
			slots[idx] = &arg
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				args, err := collectArgs(slots)
				if err != nil {
					return program.Instruction{}, err
				}
				if err := checkSignature(opcodeName, opcode, args); err != nil {
					return program.Instruction{}, err
				}
				return program.Instruction{Order: order, Opcode: opcode, Args: args}, nil
			}
		}
	}
}

// checkSignature enforces each opcode's fixed arity at load time, always
// as a structural error, and its per-position operand class for every
// opcode except those that defer the check to their handler (spec §4.2:
// LABEL/DEFVAR/CALL report a wrong operand kind as TYPE 53, not
// STRUCTURE 32 — see program.Opcode.DefersKindCheck).
func checkSignature(opcodeName string, opcode program.Opcode, args []program.Arg) error {
	sig := opcode.Signature()
	if len(args) != len(sig) {
		return diag.Structuref("%s requires %d argument(s), got %d", opcodeName, len(sig), len(args))
	}
	if opcode.DefersKindCheck() {
		return nil
	}
	for i, class := range sig {
		if !class.Matches(args[i].Kind) {
			return diag.Structuref("%s argument %d must be a %s, got %s", opcodeName, i+1, class, args[i].Kind)
		}
	}
	return nil
}

// collectArgs turns the arg1/arg2/arg3 slots into an ordered slice,
// rejecting gaps (e.g. arg1 absent but arg2 present).
func collectArgs(slots [3]*program.Arg) ([]program.Arg, error) {
	var args []program.Arg
	for i := 0; i < 3; i++ {
		if slots[i] == nil {
			for j := i + 1; j < 3; j++ {
				if slots[j] != nil {
					return nil, diag.Structuref("instruction arguments must be contiguous starting at arg1")
				}
			}
			break
		}
		args = append(args, *slots[i])
	}
	return args, nil
}

func decodeArg(dec *xml.Decoder, start xml.StartElement) (program.Arg, error) {
	if len(start.Attr) != 1 || start.Attr[0].Name.Local != "type" {
		return program.Arg{}, diag.Structuref("<%s> must have exactly one attribute 'type'", start.Name.Local)
	}
	kindName := strings.ToLower(start.Attr[0].Value)
	kind, ok := parseKind(kindName)
	if !ok {
		return program.Arg{}, diag.Structuref("unrecognized arg type %q", start.Attr[0].Value)
	}

	var raw strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return program.Arg{}, diag.XMLParsef("malformed XML: %v", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			raw.Write(t)
		case xml.StartElement:
			return program.Arg{}, diag.Structuref("unexpected element <%s> inside <%s>", t.Name.Local, start.Name.Local)
		case xml.EndElement:
			if t.Name.Local != start.Name.Local {
				return program.Arg{}, diag.Structuref("mismatched closing tag </%s> inside <%s>", t.Name.Local, start.Name.Local)
			}
			return buildArg(kind, strings.TrimSpace(raw.String()))
		}
	}
}

func parseKind(name string) (program.ArgKind, bool) {
	switch name {
	case "var":
		return program.KindVar, true
	case "int":
		return program.KindInt, true
	case "string":
		return program.KindString, true
	case "bool":
		return program.KindBool, true
	case "nil":
		return program.KindNil, true
	case "label":
		return program.KindLabel, true
	case "type":
		return program.KindType, true
	default:
		return 0, false
	}
}

func buildArg(kind program.ArgKind, body string) (program.Arg, error) {
	switch kind {
	case program.KindVar:
		v, err := parseVarBody(body)
		if err != nil {
			return program.Arg{}, err
		}
		return program.Arg{Kind: kind, Var: v}, nil
	case program.KindString:
		return program.Arg{Kind: kind, Text: value.DecodeEscapes(body)}, nil
	case program.KindInt:
		if !value.ValidIntText(body) {
			return program.Arg{}, diag.Structuref("invalid int literal %q", body)
		}
		return program.Arg{Kind: kind, Text: body}, nil
	case program.KindBool:
		if !value.ValidBoolText(body) {
			return program.Arg{}, diag.Structuref("invalid bool literal %q, must be true or false", body)
		}
		return program.Arg{Kind: kind, Text: body}, nil
	case program.KindNil:
		if body != "nil" {
			return program.Arg{}, diag.Structuref("invalid nil literal %q, must be nil", body)
		}
		return program.Arg{Kind: kind, Text: "nil"}, nil
	case program.KindLabel, program.KindType:
		if body == "" {
			return program.Arg{}, diag.Structuref("empty %s name", kind)
		}
		return program.Arg{Kind: kind, Text: body}, nil
	default:
		return program.Arg{}, diag.Structuref("unreachable arg kind %v", kind)
	}
}

// parseVarBody splits a "FRAME@name" body. The frame tag's membership in
// {GF, TF, LF} is validated later, at resolution time, by the frame
// store (spec §4.3) — here we only enforce the syntactic shape.
func parseVarBody(body string) (program.Var, error) {
	at := strings.IndexByte(body, '@')
	if at <= 0 || at == len(body)-1 {
		return program.Var{}, diag.Structuref("invalid variable operand %q, expected FRAME@name", body)
	}
	return program.Var{Frame: body[:at], Name: body[at+1:]}, nil
}
