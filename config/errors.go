package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalid     = errors.New("invalid configuration")
	ErrUnsupported = errors.New("unsupported configuration format")
)

// Problems collects every issue found with a [Config], so they can be reported at once.
//
// Problems is itself an error matching [ErrInvalid], and each collected problem can be found with [errors.Is] or [errors.As].
type Problems struct {
	errs []error
}

// Add adds a new, potentially nil error.
// Nil errors will not be included.
func (p *Problems) Add(err error) *Problems {
	if err != nil {
		p.errs = append(p.errs, err)
	}
	return p
}

// Addf creates the problem with [fmt.Errorf], so "%w" may be used.
func (p *Problems) Addf(msg string, args ...any) *Problems {
	return p.Add(fmt.Errorf(msg, args...))
}

// Result returns nil if nothing has been added, otherwise it returns itself.
func (p *Problems) Result() error {
	if len(p.errs) > 0 {
		return p
	}
	return nil
}

// Len returns the number of collected problems.
func (p *Problems) Len() int {
	return len(p.errs)
}

func (p *Problems) Error() string {
	var buf strings.Builder
	buf.WriteString(ErrInvalid.Error())
	buf.WriteString(":")
	for _, err := range p.errs {
		buf.WriteString("\n  - ")
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (p *Problems) Is(target error) bool {
	return target == ErrInvalid
}

func (p *Problems) Unwrap() []error {
	return p.errs
}
