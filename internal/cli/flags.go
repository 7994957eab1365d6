package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

// timeCategoryFlag is a pflag.Value that only accepts known time categories.
type timeCategoryFlag struct {
	value domain.TimeCategory
}

var _ pflag.Value = (*timeCategoryFlag)(nil)

func (f *timeCategoryFlag) String() string { return string(f.value) }
func (f *timeCategoryFlag) Type() string   { return "category" }

func (f *timeCategoryFlag) Set(s string) error {
	c, err := domain.ParseTimeCategory(s)
	if err != nil {
		return err
	}
	f.value = c
	return nil
}

// moneyCategoryFlag is a pflag.Value that only accepts known money categories.
type moneyCategoryFlag struct {
	value domain.MoneyCategory
}

var _ pflag.Value = (*moneyCategoryFlag)(nil)

func (f *moneyCategoryFlag) String() string { return string(f.value) }
func (f *moneyCategoryFlag) Type() string   { return "category" }

func (f *moneyCategoryFlag) Set(s string) error {
	c, err := domain.ParseMoneyCategory(s)
	if err != nil {
		return err
	}
	f.value = c
	return nil
}

// dateFlag accepts YYYY-MM-DD. Empty means today.
type dateFlag struct {
	value string
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string { return f.value }
func (f *dateFlag) Type() string   { return "date" }

func (f *dateFlag) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	f.value = d
	return nil
}

func (f *dateFlag) orToday(a *App) string {
	if f.value == "" {
		return domain.Today(a.now())
	}
	return f.value
}

func timeCategoryNames() string {
	names := make([]string, 0, len(domain.AllTimeCategories()))
	for _, c := range domain.AllTimeCategories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func moneyCategoryNames() string {
	names := make([]string, 0, len(domain.AllMoneyCategories()))
	for _, c := range domain.AllMoneyCategories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
