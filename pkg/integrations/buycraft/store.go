package buycraft

import (
	"encoding/json"
	"fmt"

	"github.com/shininet/buycraft/pkg/errors"
)

// Category is an independently cached group of API data.
type Category int

const (
	CategoryInfo Category = iota
	CategoryPackages
	CategoryPayments
	CategoryCommands
	CategoryChecker
)

var categoryNames = [...]string{
	CategoryInfo:     "info",
	CategoryPackages: "packages",
	CategoryPayments: "payments",
	CategoryCommands: "commands",
	CategoryChecker:  "checker",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{CategoryInfo, CategoryPackages, CategoryPayments, CategoryCommands, CategoryChecker}
}

// ParseCategory maps an action name such as "payments" to its Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown category %q", s)
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// params returns the request parameters that fetch this category.
func (c Category) params() map[string]string {
	p := map[string]string{"action": c.String()}
	if c == CategoryCommands || c == CategoryChecker {
		p["do"] = "lookup"
	}
	return p
}

// slot holds one cached category. set distinguishes a fetched empty list
// from a category that was never fetched.
type slot[T any] struct {
	val T
	set bool
}

func (s *slot[T]) put(v T) {
	s.val = v
	s.set = true
}

// store is the per-client cache record.
type store struct {
	info     slot[Info]
	packages slot[[]Package]
	payments slot[[]Payment]
	commands slot[[]CommandBatch]
	checker  slot[Checker]
}

func (s *store) populated(c Category) bool {
	switch c {
	case CategoryInfo:
		return s.info.set
	case CategoryPackages:
		return s.packages.set
	case CategoryPayments:
		return s.payments.set
	case CategoryCommands:
		return s.commands.set
	case CategoryChecker:
		return s.checker.set
	}
	return false
}

// fill decodes payload for category c and stores it, overwriting any prior
// value. Nothing is written unless decoding succeeds. It returns the number
// of items stored.
func (s *store) fill(c Category, payload []byte) (int, error) {
	switch c {
	case CategoryInfo:
		var v Info
		if err := decode(c, payload, &v); err != nil {
			return 0, err
		}
		s.info.put(v)
		return 1, nil
	case CategoryPackages:
		var v []Package
		if err := decode(c, payload, &v); err != nil {
			return 0, err
		}
		s.packages.put(nonNil(v))
		return len(v), nil
	case CategoryPayments:
		var v []Payment
		if err := decode(c, payload, &v); err != nil {
			return 0, err
		}
		s.payments.put(nonNil(v))
		return len(v), nil
	case CategoryCommands:
		var v struct {
			Commands *[]CommandBatch `json:"commands"`
		}
		if err := decode(c, payload, &v); err != nil {
			return 0, err
		}
		if v.Commands == nil {
			return 0, errors.New(errors.ErrCodeMalformedResponse, "commands payload has no commands field")
		}
		s.commands.put(nonNil(*v.Commands))
		return len(*v.Commands), nil
	case CategoryChecker:
		var v Checker
		if err := decode(c, payload, &v); err != nil {
			return 0, err
		}
		s.checker.put(v)
		return len(v.Claimables) + len(v.Expiries), nil
	}
	return 0, errors.New(errors.ErrCodeInternal, "unknown category %d", int(c))
}

func decode(c Category, payload []byte, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedResponse, err, "decode %s payload", c)
	}
	return nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func (s *store) packageList() []Package        { return s.packages.val }
func (s *store) paymentList() []Payment        { return s.payments.val }
func (s *store) commandList() []CommandBatch   { return s.commands.val }
func (s *store) claimableList() []CommandBatch { return s.checker.val.Claimables }
func (s *store) expiryList() []CommandBatch    { return s.checker.val.Expiries }
