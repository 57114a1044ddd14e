package classifier

import (
	"strings"

	"github.com/you-humble/cimco-parts/internal/model"
)

type StockClassifier interface {
	StockClass(key string) model.StockClass
	SpecKeyed(class model.StockClass) bool
}

type ClassRule struct {
	Class    model.StockClass
	Keywords []string
}

// ClassTable maps stock keys to classes; the first matching rule wins.
type ClassTable struct {
	rules     []ClassRule
	specKeyed map[model.StockClass]bool
}

func DefaultStockClassTable() *ClassTable {
	return NewClassTable(
		[]ClassRule{
			{Class: model.StockClassMotor, Keywords: []string{"MOTOR"}},
			{Class: model.StockClassGearbox, Keywords: []string{"REDUCER", "GEARBOX"}},
			{Class: model.StockClassBearing, Keywords: []string{"SEAL", "BUSHING", "BEARING"}},
			{Class: model.StockClassWearBit, Keywords: []string{"HAMMER", "BIT"}},
			{Class: model.StockClassFastener, Keywords: []string{"BOLT", "NUT"}},
		},
		model.StockClassMotor, model.StockClassGearbox,
	)
}

// NewClassTable builds a table; specKeyed classes get the description
// fingerprint appended to their stock key.
func NewClassTable(rules []ClassRule, specKeyed ...model.StockClass) *ClassTable {
	t := &ClassTable{
		rules:     make([]ClassRule, 0, len(rules)),
		specKeyed: make(map[model.StockClass]bool, len(specKeyed)),
	}
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			if kw = strings.ToUpper(strings.TrimSpace(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		t.rules = append(t.rules, ClassRule{Class: r.Class, Keywords: kws})
	}
	for _, c := range specKeyed {
		t.specKeyed[c] = true
	}

	return t
}

func (t *ClassTable) StockClass(key string) model.StockClass {
	key = strings.ToUpper(key)
	for _, r := range t.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(key, kw) {
				return r.Class
			}
		}
	}

	return model.StockClassDefault
}

func (t *ClassTable) SpecKeyed(class model.StockClass) bool {
	return t.specKeyed[class]
}
