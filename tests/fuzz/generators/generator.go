// Package generators builds random dump text for fuzzing the reader and
// the lift pipeline. Generated programs are balanced and arity-correct, so
// a run that produces read or lift errors points at a real regression; the
// fuzz engine's byte mutations take care of the hostile inputs.
package generators

import (
	"fmt"
	"math/rand"
	"strings"
)

// entropy is where generation decisions come from: a seeded PRNG for the
// deterministic tests, fuzz-engine bytes for the fuzz targets.
type entropy interface {
	Intn(n int) int
}

// byteSource spends one input byte per decision. Exhausted bytes yield
// zero, which steers every weighted choice to its first arm and winds
// recursion down.
type byteSource struct {
	data []byte
	pos  int
}

func (s *byteSource) Intn(n int) int {
	if n <= 0 || s.pos >= len(s.data) {
		return 0
	}
	b := s.data[s.pos]
	s.pos++
	return int(b) % n
}

// Generator emits random well-formed dump text.
type Generator struct {
	src   entropy
	depth int
}

const (
	MaxDepth = 5
	MaxDecls = 4
)

func New(seed int64) *Generator {
	return &Generator{src: rand.New(rand.NewSource(seed))}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &byteSource{data: data}}
}

var identPool = []string{"x", "y", "z", "limit", "count", "buf", "next", "head", "tail", "acc"}

var binaryOps = []string{
	"+", "-", "*", "/", "%", "==", "!=", "&&", "||", "&", "|", "^",
	"lt", "le", "gt", "ge", "shl", "shr",
}

var unaryOps = []string{"+", "-", "!", "~", "*", "&", "++", "--"}

var assignOps = []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^="}

var builtinWords = []string{"void", "bool", "char", "short", "int", "long", "long long", "float", "double"}

func (g *Generator) GenerateProgram() string {
	var sb strings.Builder
	count := g.src.Intn(MaxDecls) + 1
	for i := 0; i < count; i++ {
		sb.WriteString(g.GenerateTopLevel())
		sb.WriteString("\n")
		sb.WriteString(g.GenerateNoise())
	}
	return sb.String()
}

// GenerateNoise emits the whitespace and comments a real dump carries
// between groups.
func (g *Generator) GenerateNoise() string {
	if g.src.Intn(5) != 0 {
		return ""
	}
	switch g.src.Intn(4) {
	case 0:
		return "  "
	case 1:
		return "\t"
	case 2:
		return "; producer note\n"
	default:
		return "\n"
	}
}

// GenerateTopLevel emits one unit-level group: usually a declaration,
// sometimes a directive.
func (g *Generator) GenerateTopLevel() string {
	switch g.src.Intn(8) {
	case 0:
		return fmt.Sprintf("(include %q)", g.GenerateIdentifier()+".h")
	case 1:
		if g.src.Intn(2) == 0 {
			return "(pragma once)"
		}
		return fmt.Sprintf("(define MAX_%s %d)", strings.ToUpper(g.GenerateIdentifier()), g.src.Intn(100))
	default:
		return g.GenerateDecl()
	}
}

func (g *Generator) GenerateDecl() string {
	if g.depth > MaxDepth {
		return "(var (d x (builtin int)))"
	}
	g.depth++
	defer func() { g.depth-- }()

	choice := g.src.Intn(12)
	switch {
	case choice < 3: // 0, 1, 2
		return g.GenerateVarDecl()
	case choice < 6: // 3, 4, 5
		return g.GenerateFunDecl()
	case choice < 7: // 6
		name := g.GenerateIdentifier()
		return fmt.Sprintf("(typedecl (enum %s (e %s) (e %s %d)))",
			name, g.GenerateIdentifier(), g.GenerateIdentifier(), g.src.Intn(16))
	case choice < 8: // 7
		kind := []string{"struct", "class", "union"}[g.src.Intn(3)]
		return fmt.Sprintf("(typedecl (%s %s %s))", kind, g.GenerateIdentifier(), g.GenerateVarDecl())
	case choice < 9: // 8
		return fmt.Sprintf("(typedef %s %s)", g.GenerateIdentifier(), g.GenerateType())
	case choice < 10: // 9
		switch g.src.Intn(3) {
		case 0:
			return fmt.Sprintf("(import %s.%s)", g.GenerateIdentifier(), g.GenerateIdentifier())
		case 1:
			return fmt.Sprintf("(import %s as %s)", g.GenerateIdentifier(), g.GenerateIdentifier())
		default:
			return fmt.Sprintf("(from %s import %s %s)",
				g.GenerateIdentifier(), g.GenerateIdentifier(), g.GenerateIdentifier())
		}
	case choice < 11: // 10
		return fmt.Sprintf("(namespace %s %s)", g.GenerateIdentifier(), g.GenerateDecl())
	default: // 11
		return fmt.Sprintf("(template (tparam %s) %s)", "T", g.GenerateFunDecl())
	}
}

func (g *Generator) GenerateVarDecl() string {
	storage := ""
	if g.src.Intn(4) == 0 {
		storage = []string{"static ", "extern "}[g.src.Intn(2)]
	}
	d := fmt.Sprintf("(d %s %s", g.GenerateIdentifier(), g.GenerateType())
	if g.src.Intn(2) == 0 {
		d += " " + g.GenerateExpr()
	}
	d += ")"
	return fmt.Sprintf("(var %s%s)", storage, d)
}

func (g *Generator) GenerateFunDecl() string {
	var params []string
	for i := 0; i < g.src.Intn(3); i++ {
		params = append(params, fmt.Sprintf(" (param p%d %s)", i, g.GenerateType()))
	}
	return fmt.Sprintf("(fun %s (fntype %s%s) %s)",
		g.GenerateIdentifier(), g.GenerateType(), strings.Join(params, ""), g.GenerateBlock())
}

func (g *Generator) GenerateBlock() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	count := g.src.Intn(3)
	for i := 0; i < count; i++ {
		sb.WriteString("  ")
		sb.WriteString(g.GenerateStmt())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (g *Generator) GenerateStmt() string {
	if g.depth > MaxDepth {
		return "(return)"
	}
	g.depth++
	defer func() { g.depth-- }()

	choice := g.src.Intn(14)
	switch {
	case choice < 2: // 0, 1
		return g.GenerateBlock()
	case choice < 4: // 2, 3
		if g.src.Intn(2) == 0 {
			return fmt.Sprintf("(if %s %s)", g.GenerateExpr(), g.GenerateStmt())
		}
		return fmt.Sprintf("(if %s %s %s)", g.GenerateExpr(), g.GenerateStmt(), g.GenerateStmt())
	case choice < 5: // 4
		return fmt.Sprintf("(while %s %s)", g.GenerateExpr(), g.GenerateBlock())
	case choice < 6: // 5
		init, cond, post := "_", "_", "_"
		if g.src.Intn(2) == 0 {
			init = g.GenerateVarDecl()
		}
		if g.src.Intn(2) == 0 {
			cond = g.GenerateExpr()
		}
		if g.src.Intn(2) == 0 {
			post = fmt.Sprintf("(assign += %s 1)", g.GenerateIdentifier())
		}
		return fmt.Sprintf("(for %s %s %s %s)", init, cond, post, g.GenerateBlock())
	case choice < 7: // 6
		return fmt.Sprintf("(foreach (d %s) %s %s)", g.GenerateIdentifier(), g.GenerateExpr(), g.GenerateBlock())
	case choice < 9: // 7, 8
		if g.src.Intn(2) == 0 {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", g.GenerateExpr())
	case choice < 10: // 9
		return []string{"(break)", "(continue)", "(nop)"}[g.src.Intn(3)]
	case choice < 11: // 10
		t := fmt.Sprintf("(try %s (handler (param e %s) %s)", g.GenerateBlock(), g.GenerateType(), g.GenerateBlock())
		if g.src.Intn(2) == 0 {
			t += fmt.Sprintf(" (finally %s)", g.GenerateBlock())
		}
		return t + ")"
	case choice < 12: // 11, an unknown head lifts to the escape hatch
		return fmt.Sprintf("(yield %s)", g.GenerateExpr())
	default: // 12, 13
		return g.GenerateExpr()
	}
}

func (g *Generator) GenerateExpr() string {
	if g.depth > MaxDepth {
		return g.GenerateIdentifier()
	}
	g.depth++
	defer func() { g.depth-- }()

	choice := g.src.Intn(18)
	switch {
	case choice < 4: // 0..3
		return g.GenerateIdentifier()
	case choice < 6: // 4, 5
		return fmt.Sprintf("%d", g.src.Intn(1000))
	case choice < 7: // 6
		return []string{"2.5", "1e10", "0.125"}[g.src.Intn(3)]
	case choice < 8: // 7
		return fmt.Sprintf("%q", g.GenerateIdentifier())
	case choice < 9: // 8
		return []string{"true", "false", "null", "'a'"}[g.src.Intn(4)]
	case choice < 11: // 9, 10
		return fmt.Sprintf("(binary %s %s %s)",
			binaryOps[g.src.Intn(len(binaryOps))], g.GenerateExpr(), g.GenerateExpr())
	case choice < 12: // 11
		return fmt.Sprintf("(unary %s %s)", unaryOps[g.src.Intn(len(unaryOps))], g.GenerateExpr())
	case choice < 13: // 12
		return fmt.Sprintf("(assign %s %s %s)",
			assignOps[g.src.Intn(len(assignOps))], g.GenerateIdentifier(), g.GenerateExpr())
	case choice < 15: // 13, 14
		args := ""
		for i := 0; i < g.src.Intn(3); i++ {
			args += " " + g.GenerateExpr()
		}
		return fmt.Sprintf("(call %s%s)", g.GenerateIdentifier(), args)
	case choice < 16: // 15
		switch g.src.Intn(4) {
		case 0:
			return fmt.Sprintf("(index %s %s)", g.GenerateIdentifier(), g.GenerateExpr())
		case 1:
			return fmt.Sprintf("(field %s %s)", g.GenerateIdentifier(), g.GenerateIdentifier())
		case 2:
			return fmt.Sprintf("(arrow %s %s)", g.GenerateIdentifier(), g.GenerateIdentifier())
		default:
			return fmt.Sprintf("(paren %s)", g.GenerateExpr())
		}
	case choice < 17: // 16
		switch g.src.Intn(3) {
		case 0:
			return fmt.Sprintf("(cond %s %s %s)", g.GenerateExpr(), g.GenerateExpr(), g.GenerateExpr())
		case 1:
			return fmt.Sprintf("(cast %s %s)", g.GenerateType(), g.GenerateExpr())
		default:
			return fmt.Sprintf("(sizeof %s)", g.GenerateType())
		}
	default: // 17
		return fmt.Sprintf("(lambda (param %s %s) %s)", g.GenerateIdentifier(), g.GenerateType(), g.GenerateBlock())
	}
}

func (g *Generator) GenerateType() string {
	if g.depth > MaxDepth {
		return "(builtin int)"
	}
	g.depth++
	defer func() { g.depth-- }()

	choice := g.src.Intn(10)
	switch {
	case choice < 4: // 0..3
		word := builtinWords[g.src.Intn(len(builtinWords))]
		if g.src.Intn(5) == 0 && word != "void" && word != "bool" && word != "float" && word != "double" {
			return fmt.Sprintf("(builtin unsigned %s)", word)
		}
		return fmt.Sprintf("(builtin %s)", word)
	case choice < 5: // 4
		return fmt.Sprintf("(named %s)", g.GenerateIdentifier())
	case choice < 6: // 5
		return fmt.Sprintf("(ptr %s)", g.GenerateType())
	case choice < 7: // 6
		return fmt.Sprintf("(ref %s)", g.GenerateType())
	case choice < 8: // 7
		if g.src.Intn(2) == 0 {
			return fmt.Sprintf("(arr %s %d)", g.GenerateType(), g.src.Intn(32))
		}
		return fmt.Sprintf("(arr %s)", g.GenerateType())
	case choice < 9: // 8
		qual := []string{"const", "volatile"}[g.src.Intn(2)]
		return fmt.Sprintf("(qual %s %s)", qual, g.GenerateType())
	default: // 9
		return fmt.Sprintf("(fntype %s (param %s %s))", g.GenerateType(), g.GenerateIdentifier(), g.GenerateType())
	}
}

func (g *Generator) GenerateIdentifier() string {
	name := identPool[g.src.Intn(len(identPool))]
	if g.src.Intn(6) == 0 {
		name = fmt.Sprintf("%s%d", name, g.src.Intn(10))
	}
	return name
}
