package term

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainStatement = "rdforder/statement/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// StatementID computes the content-addressed id of a statement from its
// N-Triples rendering. Two statements share an id exactly when their
// renderings are identical, so the id is stable across processes.
//
// Blank node ids take part in the hash; the same blank label in two graphs
// yields the same id, which is why the store keys on (graph, id).
func StatementID(st Statement) (string, error) {
	if st.Subject == nil || st.Predicate == nil || st.Object == nil {
		return "", fmt.Errorf("StatementID: statement has a nil term")
	}
	return hashWithDomain(DomainStatement, []byte(st.String())), nil
}

// MustStatementID is like StatementID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustStatementID(st Statement) string {
	id, err := StatementID(st)
	if err != nil {
		panic(err)
	}
	return id
}
