package catalog

import (
	"fmt"
	"sort"
)

// AuthPosture describes the authentication a service ships with by
// default, as far as it matters for assessing exposure.
//
// Design decision: We use a closed iota-based enum rather than the
// free-form strings of typical target lists so classification and
// reporting logic can match exhaustively.
type AuthPosture int

const (
	// AuthNone means the service requires no authentication.
	AuthNone AuthPosture = iota

	// AuthToken means the service requires a bearer or URL token.
	AuthToken

	// AuthSession means the service uses session-based login.
	AuthSession

	// AuthPassword means the service requires a password at the protocol level.
	AuthPassword

	// AuthCert means the service requires client certificates.
	AuthCert

	// AuthDefaultCredentials means the service ships with well-known
	// default credentials.
	AuthDefaultCredentials

	// AuthVaries means the posture depends on deployment configuration.
	AuthVaries

	// AuthUnknown means the posture has not been assessed.
	AuthUnknown
)

// String returns a human-readable representation of the auth posture.
func (a AuthPosture) String() string {
	switch a {
	case AuthNone:
		return "none"
	case AuthToken:
		return "token"
	case AuthSession:
		return "session"
	case AuthPassword:
		return "password"
	case AuthCert:
		return "cert"
	case AuthDefaultCredentials:
		return "default-credentials"
	case AuthVaries:
		return "varies"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the posture as its string form.
func (a AuthPosture) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", a.String())), nil
}

// ParseAuthPosture converts a string to an AuthPosture.
// Unrecognized values map to AuthUnknown.
func ParseAuthPosture(s string) AuthPosture {
	switch s {
	case "none", "false", "":
		return AuthNone
	case "token", "api_key":
		return AuthToken
	case "session":
		return AuthSession
	case "password", "bind":
		return AuthPassword
	case "cert":
		return AuthCert
	case "default", "default-credentials":
		return AuthDefaultCredentials
	case "varies":
		return AuthVaries
	default:
		return AuthUnknown
	}
}

// Rebind describes how susceptible a service is to DNS rebinding,
// the out-of-scope attack whose target metadata the catalog carries.
type Rebind int

const (
	// RebindConfirmed means rebinding against the service has been demonstrated.
	RebindConfirmed Rebind = iota

	// RebindLikely means the service accepts arbitrary Host headers and
	// is expected to be rebindable.
	RebindLikely

	// RebindPartial means rebinding works under some configurations only.
	RebindPartial

	// RebindNo means the service is not rebindable (non-HTTP protocol
	// or strict Host validation).
	RebindNo

	// RebindUnknown means susceptibility has not been assessed.
	RebindUnknown
)

// String returns a human-readable representation of the susceptibility.
func (r Rebind) String() string {
	switch r {
	case RebindConfirmed:
		return "confirmed"
	case RebindLikely:
		return "likely"
	case RebindPartial:
		return "partial"
	case RebindNo:
		return "no"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the susceptibility as its string form.
func (r Rebind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// ParseRebind converts a string to a Rebind value.
// Unrecognized values map to RebindUnknown.
func ParseRebind(s string) Rebind {
	switch s {
	case "confirmed":
		return RebindConfirmed
	case "likely":
		return RebindLikely
	case "partial":
		return RebindPartial
	case "no":
		return RebindNo
	default:
		return RebindUnknown
	}
}

// Category groups services by the kind of tooling they belong to.
type Category int

const (
	// CategoryWebDev covers web development servers.
	CategoryWebDev Category = iota

	// CategoryAI covers AI/ML tooling and inference servers.
	CategoryAI

	// CategoryAutomation covers workflow and home automation tools.
	CategoryAutomation

	// CategoryInfra covers infrastructure and orchestration services.
	CategoryInfra

	// CategoryData covers databases, queues, and storage engines.
	CategoryData

	// CategoryDev covers general developer tooling.
	CategoryDev
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryWebDev:
		return "webdev"
	case CategoryAI:
		return "ai"
	case CategoryAutomation:
		return "automation"
	case CategoryInfra:
		return "infra"
	case CategoryData:
		return "data"
	case CategoryDev:
		return "dev"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the category as its string form.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

// ParseCategory converts a string to a Category.
// Unrecognized values map to CategoryDev.
func ParseCategory(s string) Category {
	switch s {
	case "webdev":
		return CategoryWebDev
	case "ai":
		return CategoryAI
	case "automation":
		return CategoryAutomation
	case "infra":
		return CategoryInfra
	case "data":
		return CategoryData
	default:
		return CategoryDev
	}
}

// Record is one immutable catalog entry: a service identity bound to
// the port it conventionally listens on, with exposure metadata.
type Record struct {
	// Port is the conventional TCP port, 1-65535.
	Port int `json:"port"`

	// Identity is the service display name.
	Identity string `json:"identity"`

	// Auth is the service's default authentication posture.
	Auth AuthPosture `json:"auth"`

	// Rebind is the service's DNS rebinding susceptibility.
	Rebind Rebind `json:"rebind"`

	// Impact describes what access to the service yields.
	Impact string `json:"impact"`

	// Category groups the service by tooling kind.
	Category Category `json:"category"`
}

// Spec is the YAML representation of a catalog entry, used by catalog
// override files. String fields are parsed into the closed enums with
// unknown values degrading to the corresponding unknown member.
type Spec struct {
	Port     int    `yaml:"port"`
	Identity string `yaml:"identity"`
	Auth     string `yaml:"auth,omitempty"`
	Rebind   string `yaml:"rebind,omitempty"`
	Impact   string `yaml:"impact,omitempty"`
	Category string `yaml:"category,omitempty"`
}

// Record converts the spec to a typed Record.
func (s Spec) Record() Record {
	return Record{
		Port:     s.Port,
		Identity: s.Identity,
		Auth:     ParseAuthPosture(s.Auth),
		Rebind:   ParseRebind(s.Rebind),
		Impact:   s.Impact,
		Category: ParseCategory(s.Category),
	}
}

// Catalog is an immutable, port-deduplicated set of records.
type Catalog struct {
	records []Record
	byPort  map[int]Record
}

// New builds a catalog from raw records. Records with out-of-range
// ports are dropped. When two records share a port, the first
// occurrence is kept and later duplicates are silently dropped; target
// lists commonly assign one conventional port to several products and
// a probe cannot tell them apart anyway.
func New(records []Record) *Catalog {
	c := &Catalog{
		records: make([]Record, 0, len(records)),
		byPort:  make(map[int]Record, len(records)),
	}
	for _, r := range records {
		if r.Port < 1 || r.Port > 65535 {
			continue
		}
		if _, seen := c.byPort[r.Port]; seen {
			continue
		}
		c.byPort[r.Port] = r
		c.records = append(c.records, r)
	}
	return c
}

// Default returns the catalog built from the compiled-in target list.
func Default() *Catalog {
	return New(defaultRecords)
}

// Records returns the deduplicated records in source order.
// The returned slice is a copy; the catalog itself stays immutable.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Ports returns the catalog's ports in source order.
func (c *Catalog) Ports() []int {
	ports := make([]int, len(c.records))
	for i, r := range c.records {
		ports[i] = r.Port
	}
	return ports
}

// Lookup returns the record for a port, if present.
func (c *Catalog) Lookup(port int) (Record, bool) {
	r, ok := c.byPort[port]
	return r, ok
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Categories returns the distinct categories present, sorted by name.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	for _, r := range c.records {
		seen[r.Category] = true
	}
	cats := make([]Category, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].String() < cats[j].String() })
	return cats
}
