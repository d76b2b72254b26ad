package graph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Encode writes the store as N-Triples, sorted by subject, predicate and
// object so output is deterministic across runs. N-Triples is the
// exchange format a later run can reload to merge with.
func Encode(s Store, w io.Writer) error {
	var sts []Statement
	if err := s.ForEach(func(st Statement) error {
		sts = append(sts, st)
		return nil
	}); err != nil {
		return err
	}
	sort.Slice(sts, func(i, j int) bool {
		if sts[i].Subject != sts[j].Subject {
			return sts[i].Subject < sts[j].Subject
		}
		if sts[i].Predicate != sts[j].Predicate {
			return sts[i].Predicate < sts[j].Predicate
		}
		return sts[i].Object < sts[j].Object
	})

	bw := bufio.NewWriter(w)
	for _, st := range sts {
		var obj string
		if st.Literal {
			obj = `"` + escapeLiteral(st.Object) + `"`
		} else {
			obj = "<" + st.Object + ">"
		}
		if _, err := fmt.Fprintf(bw, "<%s> <%s> %s .\n", st.Subject, st.Predicate, obj); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads N-Triples lines and merges every statement into the
// store. Lines that are empty or start with # are skipped; a malformed
// line fails the whole decode so a truncated file is not silently
// half-merged.
func Decode(r io.Reader, s Store) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		s.Add(st)
	}
	return sc.Err()
}

func parseLine(line string) (Statement, error) {
	var st Statement

	rest, iri, err := takeIRI(line)
	if err != nil {
		return st, fmt.Errorf("subject: %w", err)
	}
	st.Subject = iri

	rest, iri, err = takeIRI(strings.TrimLeft(rest, " \t"))
	if err != nil {
		return st, fmt.Errorf("predicate: %w", err)
	}
	st.Predicate = iri

	rest = strings.TrimLeft(rest, " \t")
	switch {
	case strings.HasPrefix(rest, "<"):
		rest, iri, err = takeIRI(rest)
		if err != nil {
			return st, fmt.Errorf("object: %w", err)
		}
		st.Object = iri
	case strings.HasPrefix(rest, `"`):
		value, tail, err := takeLiteral(rest)
		if err != nil {
			return st, fmt.Errorf("object: %w", err)
		}
		st.Object = value
		st.Literal = true
		rest = tail
	default:
		return st, fmt.Errorf("unexpected object term %q", rest)
	}

	if strings.TrimSpace(rest) != "." {
		return st, fmt.Errorf("missing terminating dot")
	}
	return st, nil
}

func takeIRI(s string) (rest, iri string, err error) {
	if !strings.HasPrefix(s, "<") {
		return "", "", fmt.Errorf("expected IRI, got %q", s)
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", "", fmt.Errorf("unterminated IRI")
	}
	return s[end+1:], s[1:end], nil
}

func takeLiteral(s string) (value, rest string, err error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), s[i+1:], nil
		case '\\':
			if i+1 >= len(s) {
				return "", "", fmt.Errorf("dangling escape")
			}
			i++
			switch s[i] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", "", fmt.Errorf("unknown escape \\%c", s[i])
			}
		default:
			b.WriteByte(c)
		}
		i++
	}
	return "", "", fmt.Errorf("unterminated literal")
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
