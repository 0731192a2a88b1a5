package cxx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"capnp-generator/internal/common"
)

// DefaultExtensions are the header extensions scanned when none are configured.
var DefaultExtensions = []string{".h", ".hpp", ".hh"}

// Scanner is the built-in structural parser. It walks Root for header
// files and extracts top-level class/struct declarations with a pure
// text scan: no preprocessing, no template instantiation, no name
// lookup. That is enough for plain data-holder headers; anything it
// cannot read structurally surfaces as KindOther and falls back to
// Text downstream.
type Scanner struct {
	Root string
	// Extensions are lowercase header extensions to scan; DefaultExtensions when empty.
	Extensions []string
	// Exclude lists directory basenames skipped during the walk.
	Exclude []string
	// Passthrough holds compiler-style tokens forwarded from the command
	// line. The built-in scanner records them but does not interpret them.
	Passthrough []string
}

// Declarations walks the header tree and returns all top-level
// declarations, in lexical file order and declaration order within a file.
func (s *Scanner) Declarations() ([]Declaration, error) {
	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, fmt.Errorf("scanning root %s: %w", s.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning root %s: not a directory", s.Root)
	}

	exts := s.Extensions
	if common.IsEmpty(exts) {
		exts = DefaultExtensions
	}

	var decls []Declaration

	err = filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != s.Root && slices.Contains(s.Exclude, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading header %s: %w", path, err)
		}

		decls = append(decls, ParseSource(string(data))...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return decls, nil
}

// ParseSource extracts top-level class/struct declarations from header
// source text. Anonymous declarations are returned with an empty name
// so the walker can account for them.
func ParseSource(src string) []Declaration {
	clean := stripPreprocessor(stripComments(src))

	var decls []Declaration

	pos := 0
	for {
		head, ok := findClassHead(clean, pos)
		if !ok {
			break
		}

		body, end := matchBraces(clean, head.bodyStart)
		if end < 0 {
			// Unbalanced braces, give up on the rest of the file.
			break
		}

		pos = end

		if head.name == "" {
			decls = append(decls, Declaration{})
			continue
		}

		decls = append(decls, Declaration{Name: head.name, Fields: parseFields(body)})
	}

	return decls
}

// skipStringLiteral returns the index just past the string or
// character literal opening at i. Backslash escapes are honored; an
// unterminated literal consumes the rest of the input.
func skipStringLiteral(s string, i int) int {
	quote := s[i]

	for i++; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}

	return len(s)
}

// stripComments removes // line comments and /* */ block comments.
// Block comments are replaced by a space so token boundaries survive.
// String and character literals pass through untouched, so a "//"
// inside a default value is not mistaken for a comment.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		if src[i] == '"' || src[i] == '\'' {
			j := skipStringLiteral(src, i)
			b.WriteString(src[i:j])
			i = j
			continue
		}

		if strings.HasPrefix(src[i:], "//") {
			j := strings.IndexByte(src[i:], '\n')
			if j < 0 {
				break
			}

			i += j // keep the newline
			continue
		}

		if strings.HasPrefix(src[i:], "/*") {
			j := strings.Index(src[i+2:], "*/")
			if j < 0 {
				break
			}

			b.WriteByte(' ')
			i += 2 + j + 2
			continue
		}

		b.WriteByte(src[i])
		i++
	}

	return b.String()
}

// stripPreprocessor blanks out preprocessor lines.
func stripPreprocessor(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = ""
		}
	}

	return strings.Join(lines, "\n")
}

type classHead struct {
	name      string
	bodyStart int // index of the opening brace
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

// findClassHead locates the next class/struct declaration head at or
// after pos. Forward declarations and enum classes are skipped.
func findClassHead(s string, pos int) (classHead, bool) {
	for pos < len(s) {
		idx, kwLen := nextKeyword(s, pos)
		if idx < 0 {
			return classHead{}, false
		}

		pos = idx + kwLen

		if precededByWord(s, idx, "enum") {
			continue
		}

		j := skipSpace(s, pos)
		name := identRe.FindString(s[j:])
		j += len(name)

		stop := strings.IndexAny(s[j:], "{;")
		if stop < 0 {
			return classHead{}, false
		}

		j += stop
		if s[j] == ';' {
			// Forward declaration, no body to scan.
			pos = j + 1
			continue
		}

		return classHead{name: name, bodyStart: j}, true
	}

	return classHead{}, false
}

// nextKeyword finds the next "class" or "struct" token at a word boundary.
func nextKeyword(s string, pos int) (int, int) {
	for pos < len(s) {
		ci := strings.Index(s[pos:], "class")
		si := strings.Index(s[pos:], "struct")

		idx, kwLen := -1, 0

		switch {
		case ci >= 0 && (si < 0 || ci < si):
			idx, kwLen = pos+ci, len("class")
		case si >= 0:
			idx, kwLen = pos+si, len("struct")
		default:
			return -1, 0
		}

		if isWordBoundary(s, idx, kwLen) {
			return idx, kwLen
		}

		pos = idx + kwLen
	}

	return -1, 0
}

func isWordBoundary(s string, idx, n int) bool {
	if idx > 0 && isIdentChar(s[idx-1]) {
		return false
	}

	return idx+n >= len(s) || !isIdentChar(s[idx+n])
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}

func precededByWord(s string, idx int, word string) bool {
	i := idx
	for i > 0 && isSpace(s[i-1]) {
		i--
	}

	if i < len(word) || s[i-len(word):i] != word {
		return false
	}

	return i == len(word) || !isIdentChar(s[i-len(word)-1])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

// matchBraces returns the text between the brace at open and its match,
// plus the index just past the closing brace. Braces inside string or
// character literals do not count. end is -1 when unbalanced.
func matchBraces(s string, open int) (string, int) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '"', '\'':
			i = skipStringLiteral(s, i) - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1
			}
		}
	}

	return "", -1
}

// memberSkipWords reject a member statement outright when they lead it:
// these introduce types, aliases, or non-instance members, never a
// plain data field.
var memberSkipWords = map[string]bool{
	"using":     true,
	"typedef":   true,
	"friend":    true,
	"static":    true,
	"template":  true,
	"virtual":   true,
	"operator":  true,
	"constexpr": true,
	"explicit":  true,
	"enum":      true,
	"class":     true,
	"struct":    true,
	"union":     true,
	"public":    true,
	"protected": true,
	"private":   true,
}

// qualifierWords are stripped from the front of a member statement
// before the type spelling is read.
var qualifierWords = map[string]bool{
	"const":    true,
	"mutable":  true,
	"volatile": true,
	"inline":   true,
}

// parseFields splits a class body into member statements and keeps the
// ones that look like data fields, in declaration order.
func parseFields(body string) []FieldDecl {
	var fields []FieldDecl

	depth := 0
	start := 0

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"', '\'':
			i = skipStringLiteral(body, i) - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && !followedBySemicolon(body, i+1) {
				// Method body or similar block without a trailing
				// semicolon; nothing in it is a field of ours.
				start = i + 1
			}
		case ';':
			if depth == 0 {
				fields = append(fields, parseMembers(body[start:i])...)
				start = i + 1
			}
		case ':':
			if depth == 0 && isAccessSpecifier(body[start:i]) {
				start = i + 1
			}
		}
	}

	return fields
}

func followedBySemicolon(s string, i int) bool {
	i = skipSpace(s, i)
	return i < len(s) && s[i] == ';'
}

func isAccessSpecifier(stmt string) bool {
	switch strings.TrimSpace(stmt) {
	case "public", "protected", "private":
		return true
	default:
		return false
	}
}

var memberRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*((?:\[[^\]]*\])*)\s*$`)

var declaratorRe = regexp.MustCompile(`^([*&]*)\s*([A-Za-z_][A-Za-z0-9_]*)\s*((?:\[[^\]]*\])*)$`)

// parseMembers reads one member statement and extracts its data
// fields. A comma-declarator statement like "int x, y;" yields one
// field per declarator, all sharing the base type.
func parseMembers(stmt string) []FieldDecl {
	stmt = cutBraces(stmt)

	// Drop default member initializers.
	if eq := strings.IndexByte(stmt, '='); eq >= 0 {
		stmt = stmt[:eq]
	}

	stmt = strings.TrimSpace(stmt)
	if stmt == "" || strings.ContainsAny(stmt, "()") {
		return nil
	}

	tokens := strings.Fields(stmt)

	first, ok := common.First(tokens)
	if !ok || memberSkipWords[first] {
		return nil
	}

	for len(tokens) > 1 && qualifierWords[tokens[0]] {
		tokens = tokens[1:]
	}

	segs := splitDeclarators(strings.Join(tokens, " "))

	m := memberRe.FindStringSubmatch(segs[0])
	if m == nil || m[1] == "" {
		return nil
	}

	spelling := strings.TrimSpace(strings.TrimSuffix(segs[0], m[0]))
	if spelling == "" {
		return nil
	}

	if m[2] != "" {
		// Fold the array declarator back into the spelling so the kind
		// classification sees it.
		spelling += "[]"
	}

	fields := []FieldDecl{{
		Name: m[1],
		Type: TypeDescriptor{Spelling: spelling, Kind: kindOf(spelling)},
	}}

	// Pointer and array decorations bind to the declarator, not the
	// type, so later declarators start from the undecorated base.
	base := strings.TrimRight(spelling, "*& ")
	base = strings.TrimSuffix(base, "[]")

	for _, seg := range segs[1:] {
		d := declaratorRe.FindStringSubmatch(strings.TrimSpace(seg))
		if d == nil {
			continue
		}

		sp := base
		if d[1] != "" {
			sp += d[1]
		}
		if d[3] != "" {
			sp += "[]"
		}

		fields = append(fields, FieldDecl{
			Name: d[2],
			Type: TypeDescriptor{Spelling: sp, Kind: kindOf(sp)},
		})
	}

	return fields
}

// splitDeclarators splits a declaration on top-level commas; commas
// inside template angle brackets do not split.
func splitDeclarators(s string) []string {
	var parts []string

	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// cutBraces removes {...} spans (brace initializers) from a statement.
// Brace characters inside string or character literals are inert.
func cutBraces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\'':
			j := skipStringLiteral(s, i)
			if depth == 0 {
				b.WriteString(s[i:j])
			}
			i = j - 1
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteByte(s[i])
			}
		}
	}

	return b.String()
}

// builtinKinds maps exact builtin spellings to their coarse kind.
// Fixed-width typedefs are resolved by width, not by their
// platform-dependent canonical type.
var builtinKinds = map[string]Kind{
	"int":          KindInt,
	"long":         KindInt,
	"short":        KindInt,
	"long int":     KindInt,
	"short int":    KindInt,
	"signed":       KindInt,
	"signed int":   KindInt,
	"signed long":  KindInt,
	"signed short": KindInt,
	"int8_t":       KindInt,
	"int16_t":      KindInt,
	"int32_t":      KindInt,
	"ssize_t":      KindInt,
	"ptrdiff_t":    KindInt,

	"unsigned":           KindUInt,
	"unsigned int":       KindUInt,
	"unsigned long":      KindUInt,
	"unsigned short":     KindUInt,
	"unsigned long int":  KindUInt,
	"unsigned short int": KindUInt,
	"uint8_t":            KindUInt,
	"uint16_t":           KindUInt,
	"uint32_t":           KindUInt,
	"size_t":             KindUInt,

	"long long":        KindLongLong,
	"long long int":    KindLongLong,
	"signed long long": KindLongLong,
	"int64_t":          KindLongLong,

	"unsigned long long":     KindULongLong,
	"unsigned long long int": KindULongLong,
	"uint64_t":               KindULongLong,

	"float":  KindFloat,
	"double": KindDouble,
	"bool":   KindBool,
}

// charLike covers builtins the target vocabulary has no mapping for;
// they classify as KindOther and resolve to Text downstream.
var charLike = map[string]bool{
	"char":          true,
	"signed char":   true,
	"unsigned char": true,
	"wchar_t":       true,
	"char8_t":       true,
	"char16_t":      true,
	"char32_t":      true,
	"long double":   true,
	"void":          true,
	"auto":          true,
}

var fullIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// kindOf assigns the coarse kind for a type spelling.
func kindOf(spelling string) Kind {
	if strings.ContainsAny(spelling, "*&[") {
		return KindOther
	}

	if k, ok := builtinKinds[spelling]; ok {
		return k
	}

	if charLike[spelling] {
		return KindOther
	}

	if strings.Contains(spelling, "::") || strings.Contains(spelling, "<") {
		return KindRecord
	}

	if fullIdentRe.MatchString(spelling) {
		return KindRecord
	}

	return KindOther
}
