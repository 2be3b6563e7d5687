package cache

// entry is the stored record for one key. An entry is reachable only through
// the cache map; removing it from the map is the sole ownership-release
// point. After a write, only hits and accessedAt ever change — a Set on an
// existing key removes the old entry and inserts a fresh one.
type entry struct {
	key        string
	value      []byte // encoded, possibly compressed
	bytes      int64  // len(value) as stored
	compressed bool
	hits       int64 // successful reads since creation
	accessedAt int64 // Unix ms of most recent successful read (or creation)
	updatedAt  int64 // Unix ms of creation
	ttl        int64 // configured lifetime in ms, 0 = none
	expiresAt  int64 // absolute expiry in Unix ms, fixed at write time, 0 = none
	limit      int64 // max hits before forced expiry, 0 = none
	cost       float64
}

// EntryInfo is a point-in-time copy of an entry's metadata together with its
// decoded value, as returned by Info.
type EntryInfo struct {
	Key        string  `json:"key"`
	Value      any     `json:"value"`
	Bytes      int64   `json:"bytes"`
	Compressed bool    `json:"compressed"`
	Hits       int64   `json:"hits"`
	AccessedAt int64   `json:"accessed"` // Unix ms
	UpdatedAt  int64   `json:"updated"`  // Unix ms
	TTL        int64   `json:"ttl,omitempty"`     // ms, 0 = none
	ExpiresAt  int64   `json:"expires,omitempty"` // Unix ms, 0 = none
	Limit      int64   `json:"limit,omitempty"`   // 0 = none
	Cost       float64 `json:"cost"`
}

func (e *entry) info(value any) *EntryInfo {
	return &EntryInfo{
		Key:        e.key,
		Value:      value,
		Bytes:      e.bytes,
		Compressed: e.compressed,
		Hits:       e.hits,
		AccessedAt: e.accessedAt,
		UpdatedAt:  e.updatedAt,
		TTL:        e.ttl,
		ExpiresAt:  e.expiresAt,
		Limit:      e.limit,
		Cost:       e.cost,
	}
}

// isExpired reports whether the entry must be dropped, either because its
// absolute expiry has passed or because it has reached its hit limit. An
// entry with limit N serves reads 1..N and expires exactly on reaching N.
func (e *entry) isExpired(now int64) bool {
	if e.expiresAt != 0 && e.expiresAt <= now {
		return true
	}
	if e.limit != 0 && e.hits >= e.limit {
		return true
	}
	return false
}
