package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	goa "goa.design/goa/v3/pkg"
)

// ChipInput is a validated add/update chip request
type ChipInput struct {
	Model       string
	Description string
	Stock       int
	Price       float64
}

func required(f Fields, name string, errs []string) (string, []string) {
	v := f.Trimmed(name)
	if v == "" {
		errs = append(errs, fmt.Sprintf("%s: is required", name))
	}
	return v, errs
}

// validEmail reports whether s is a syntactically valid bare address
func validEmail(s string) bool {
	if goa.ValidateFormat("email", s, goa.FormatEmail) != nil {
		return false
	}
	// ParseAddress also accepts "Name <addr>"; only bare addresses are stored.
	return !strings.ContainsAny(s, "<> ")
}

func requiredEmail(f Fields, name string, errs []string) (string, []string) {
	v, errs := required(f, name, errs)
	if v != "" && !validEmail(v) {
		errs = append(errs, fmt.Sprintf("%s: invalid email address", name))
	}
	return v, errs
}

// ValidateSearch checks a search request
func ValidateSearch(f Fields) (string, []string) {
	return required(f, "model", nil)
}

// ValidateInquiry checks a contact submission. Only name and email are
// required, and the email is not syntax-checked on any path.
func ValidateInquiry(f Fields) []string {
	var errs []string
	_, errs = required(f, "name", errs)
	_, errs = required(f, "email", errs)
	return errs
}

// ValidateChip checks an add or update chip request
func ValidateChip(f Fields) (ChipInput, []string) {
	var (
		in   ChipInput
		errs []string
	)
	in.Model, errs = required(f, "model", errs)
	in.Description, errs = required(f, "description", errs)

	if raw, e := required(f, "stock", nil); len(e) > 0 {
		errs = append(errs, e...)
	} else if stock, err := strconv.Atoi(raw); err != nil {
		errs = append(errs, "stock: must be a whole number")
	} else if stock < 0 {
		errs = append(errs, "stock: must be at least 0")
	} else {
		in.Stock = stock
	}

	if raw, e := required(f, "price", nil); len(e) > 0 {
		errs = append(errs, e...)
	} else if price, err := strconv.ParseFloat(raw, 64); err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		errs = append(errs, "price: must be a number")
	} else if price < 0 {
		errs = append(errs, "price: must be at least 0")
	} else {
		in.Price = price
	}

	return in, errs
}

// ValidateLogin checks an admin login request
func ValidateLogin(f Fields) (string, string, []string) {
	var errs []string
	username, errs := required(f, "username", errs)
	// Passwords are compared as sent.
	password := f.Get("password")
	if password == "" {
		errs = append(errs, "password: is required")
	}
	return username, password, errs
}

// ValidateEmailSetting checks the primary recipient update
func ValidateEmailSetting(f Fields) (string, []string) {
	return requiredEmail(f, "email", nil)
}

// ValidateCCEmail checks a single CC address
func ValidateCCEmail(f Fields) (string, []string) {
	return requiredEmail(f, "email", nil)
}

// ValidateCCActive reads the explicit is_active flag of a CC toggle
func ValidateCCActive(f Fields) (bool, []string) {
	if !f.Has("is_active") || f.Trimmed("is_active") == "" {
		return false, []string{"is_active: is required"}
	}
	active, err := strconv.ParseBool(f.Trimmed("is_active"))
	if err != nil {
		return false, []string{"is_active: must be true or false"}
	}
	return active, nil
}

// ParseCCList splits a comma-separated address list, keeping entries that
// contain both "@" and "." and dropping repeats.
func ParseCCList(csv string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(csv, ",") {
		addr := strings.TrimSpace(part)
		if !strings.Contains(addr, "@") || !strings.Contains(addr, ".") || seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}
