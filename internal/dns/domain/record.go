package domain

import (
	"errors"
	"fmt"
)

// ResourceRecord is the generic, untyped form of a zone record: qualified owner,
// resolved TTL, class, type and the normalized RDATA text it was read from.
type ResourceRecord struct {
	Name  string  `json:"name"`
	TTL   uint32  `json:"ttl"`
	Class RRClass `json:"class"`
	Type  RRType  `json:"type"`
	RData string  `json:"rdata,omitempty"`
}

// Header returns the generic part of a record. It is promoted to every typed record.
func (rr *ResourceRecord) Header() *ResourceRecord {
	return rr
}

// Validate checks that the record has an owner name, a supported type and a supported class.
func (rr ResourceRecord) Validate() error {
	if rr.Name == "" {
		return errors.New("record name is empty")
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("unsupported record type: %d", uint16(rr.Type))
	}
	if rr.Class != 0 && !rr.Class.IsValid() {
		return fmt.Errorf("unsupported record class: %d", uint16(rr.Class))
	}
	return nil
}
