package rrdata

import "github.com/haukened/rr-zone/internal/dns/domain"

func decodeHTTPS(rr domain.ResourceRecord) *domain.HTTPSRecord {
	priority, target, params := decodeServiceBinding(rr.RData)
	return &domain.HTTPSRecord{ResourceRecord: rr, Priority: priority, Target: target, Params: params}
}

func encodeHTTPS(r *domain.HTTPSRecord) string {
	return encodeServiceBinding(r.Priority, r.Target, r.Params)
}
