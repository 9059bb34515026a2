// internal/models/kinds.go
package models

// Spec holds the attributes specific to a product variant. The set of variants is closed.
type Spec interface {
	Kind() Kind
	isSpec()
}

type SmartphoneSpec struct {
	Efficiency float64 `json:"efficiency" validate:"gt=0"`
	Model      string  `json:"model" validate:"notblank"`
	Memory     int     `json:"memory" validate:"gt=0"`
	Color      string  `json:"color" validate:"required"`
}

func (SmartphoneSpec) Kind() Kind { return KindSmartphone }
func (SmartphoneSpec) isSpec()    {}

type LawnGrassSpec struct {
	Country           string `json:"country" validate:"notblank"`
	GerminationPeriod int    `json:"germination_period" validate:"gt=0"`
	Color             string `json:"color" validate:"required"`
}

func (LawnGrassSpec) Kind() Kind { return KindLawnGrass }
func (LawnGrassSpec) isSpec()    {}

func NewSmartphone(data ProductData, spec SmartphoneSpec) (*Product, error) {
	return newVariant(data, &spec)
}

func NewLawnGrass(data ProductData, spec LawnGrassSpec) (*Product, error) {
	return newVariant(data, &spec)
}

func newVariant(data ProductData, spec Spec) (*Product, error) {
	p, err := NewProductFromData(data)
	if err != nil {
		return nil, err
	}
	if err := validate(spec); err != nil {
		return nil, err
	}
	p.spec = spec
	return p, nil
}

// Smartphone returns the smartphone attributes when p is a smartphone.
func (p *Product) Smartphone() (SmartphoneSpec, bool) {
	s, ok := p.spec.(*SmartphoneSpec)
	if !ok {
		return SmartphoneSpec{}, false
	}
	return *s, true
}

func (p *Product) LawnGrass() (LawnGrassSpec, bool) {
	s, ok := p.spec.(*LawnGrassSpec)
	if !ok {
		return LawnGrassSpec{}, false
	}
	return *s, true
}
