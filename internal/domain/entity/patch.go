package entity

import (
	"encoding/json"
	"fmt"
)

// ProductPatch is a single bulk-edit operation on a product.
// The set of implementations is closed; see DecodeProductPatch.
type ProductPatch interface {
	Kind() string
	isProductPatch()
}

type (
	// SetProductType mahsulot turini o'rnatish
	SetProductType struct {
		Type ProductType `json:"type"`
	}
	// AddCategory kategoriya qo'shish
	AddCategory struct {
		Key string `json:"key"`
	}
	// RemoveCategory kategoriyani olib tashlash
	RemoveCategory struct {
		Key string `json:"key"`
	}
	// SetPrice narxni o'rnatish
	SetPrice struct {
		Price float64 `json:"price"`
	}
	// AdjustPrice narxni foizga o'zgartirish (10 = +10%, -5 = -5%)
	AdjustPrice struct {
		Percent float64 `json:"percent"`
	}
	// SetFeatured bosh sahifada ko'rsatish
	SetFeatured struct {
		Featured bool `json:"featured"`
	}
	// SetStock ombordagi son
	SetStock struct {
		Stock int `json:"stock"`
	}
)

func (SetProductType) Kind() string { return "setType" }
func (AddCategory) Kind() string    { return "addCategory" }
func (RemoveCategory) Kind() string { return "removeCategory" }
func (SetPrice) Kind() string       { return "setPrice" }
func (AdjustPrice) Kind() string    { return "adjustPrice" }
func (SetFeatured) Kind() string    { return "setFeatured" }
func (SetStock) Kind() string       { return "setStock" }

func (SetProductType) isProductPatch() {}
func (AddCategory) isProductPatch()    {}
func (RemoveCategory) isProductPatch() {}
func (SetPrice) isProductPatch()       {}
func (AdjustPrice) isProductPatch()    {}
func (SetFeatured) isProductPatch()    {}
func (SetStock) isProductPatch()       {}

// ApplyProductPatch mutates p according to patch.
func ApplyProductPatch(p *Product, patch ProductPatch) error {
	switch op := patch.(type) {
	case SetProductType:
		if !op.Type.Valid() {
			return fmt.Errorf("unknown product type %q", op.Type)
		}
		p.ProductType = op.Type
	case AddCategory:
		if op.Key == "" {
			return fmt.Errorf("category key is empty")
		}
		p.AddCategory(op.Key)
	case RemoveCategory:
		p.RemoveCategory(op.Key)
	case SetPrice:
		if op.Price < 0 {
			return fmt.Errorf("price must be >= 0")
		}
		p.Price = op.Price
	case AdjustPrice:
		next := p.Price * (1 + op.Percent/100)
		if next < 0 {
			return fmt.Errorf("adjusted price would be negative")
		}
		p.Price = next
	case SetFeatured:
		p.Featured = op.Featured
	case SetStock:
		if op.Stock < 0 {
			return fmt.Errorf("stock must be >= 0")
		}
		p.Stock = op.Stock
	default:
		return fmt.Errorf("unsupported product patch %T", patch)
	}
	return nil
}

// HardwarePatch is a single bulk-edit operation on a hardware item.
type HardwarePatch interface {
	Kind() string
	isHardwarePatch()
}

type (
	// SetHardwarePrice narxni o'rnatish
	SetHardwarePrice struct {
		Price float64 `json:"price"`
	}
	// AdjustHardwarePrice narxni foizga o'zgartirish
	AdjustHardwarePrice struct {
		Percent float64 `json:"percent"`
	}
	// SetHardwareStock ombordagi son
	SetHardwareStock struct {
		Stock int `json:"stock"`
	}
)

func (SetHardwarePrice) Kind() string    { return "setPrice" }
func (AdjustHardwarePrice) Kind() string { return "adjustPrice" }
func (SetHardwareStock) Kind() string    { return "setStock" }

func (SetHardwarePrice) isHardwarePatch()    {}
func (AdjustHardwarePrice) isHardwarePatch() {}
func (SetHardwareStock) isHardwarePatch()    {}

// ApplyHardwarePatch mutates h according to patch.
func ApplyHardwarePatch(h *HardwareItem, patch HardwarePatch) error {
	switch op := patch.(type) {
	case SetHardwarePrice:
		if op.Price < 0 {
			return fmt.Errorf("price must be >= 0")
		}
		h.Price = op.Price
	case AdjustHardwarePrice:
		next := h.Price * (1 + op.Percent/100)
		if next < 0 {
			return fmt.Errorf("adjusted price would be negative")
		}
		h.Price = next
	case SetHardwareStock:
		if op.Stock < 0 {
			return fmt.Errorf("stock must be >= 0")
		}
		h.Stock = op.Stock
	default:
		return fmt.Errorf("unsupported hardware patch %T", patch)
	}
	return nil
}

type patchEnvelope struct {
	Kind string `json:"kind"`
}

// DecodeProductPatch decodes {"kind": "...", ...} into a ProductPatch.
func DecodeProductPatch(raw json.RawMessage) (ProductPatch, error) {
	var env patchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}

	var patch ProductPatch
	var err error
	switch env.Kind {
	case "setType":
		var op SetProductType
		err = json.Unmarshal(raw, &op)
		patch = op
	case "addCategory":
		var op AddCategory
		err = json.Unmarshal(raw, &op)
		patch = op
	case "removeCategory":
		var op RemoveCategory
		err = json.Unmarshal(raw, &op)
		patch = op
	case "setPrice":
		var op SetPrice
		err = json.Unmarshal(raw, &op)
		patch = op
	case "adjustPrice":
		var op AdjustPrice
		err = json.Unmarshal(raw, &op)
		patch = op
	case "setFeatured":
		var op SetFeatured
		err = json.Unmarshal(raw, &op)
		patch = op
	case "setStock":
		var op SetStock
		err = json.Unmarshal(raw, &op)
		patch = op
	default:
		return nil, fmt.Errorf("unknown product patch kind %q", env.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s patch: %w", env.Kind, err)
	}
	return patch, nil
}

// DecodeHardwarePatch decodes {"kind": "...", ...} into a HardwarePatch.
func DecodeHardwarePatch(raw json.RawMessage) (HardwarePatch, error) {
	var env patchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}

	var patch HardwarePatch
	var err error
	switch env.Kind {
	case "setPrice":
		var op SetHardwarePrice
		err = json.Unmarshal(raw, &op)
		patch = op
	case "adjustPrice":
		var op AdjustHardwarePrice
		err = json.Unmarshal(raw, &op)
		patch = op
	case "setStock":
		var op SetHardwareStock
		err = json.Unmarshal(raw, &op)
		patch = op
	default:
		return nil, fmt.Errorf("unknown hardware patch kind %q", env.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s patch: %w", env.Kind, err)
	}
	return patch, nil
}
