package models

// ClaimKind — закрытый набор известных видов claim'ов.
// Всё, что не входит в набор, относится к ClaimCustom и хранит имя в Claim.Type.
type ClaimKind uint8

const (
	ClaimCustom ClaimKind = iota
	ClaimSubject
	ClaimEmail
	ClaimTokenID
	ClaimUserID
	ClaimRole
)

// Имена claim'ов в JWT. Совпадают побитово с тем, что ожидают существующие клиенты.
const (
	ClaimNameSubject = "sub"
	ClaimNameEmail   = "email"
	ClaimNameTokenID = "jti"
	ClaimNameUserID  = "uid"
	ClaimNameRole    = "role"
)

// Name возвращает имя claim'а в токене для известных видов.
func (k ClaimKind) Name() string {
	switch k {
	case ClaimSubject:
		return ClaimNameSubject
	case ClaimEmail:
		return ClaimNameEmail
	case ClaimTokenID:
		return ClaimNameTokenID
	case ClaimUserID:
		return ClaimNameUserID
	case ClaimRole:
		return ClaimNameRole
	default:
		return ""
	}
}

// KindOf определяет вид claim'а по имени в токене.
func KindOf(name string) ClaimKind {
	switch name {
	case ClaimNameSubject:
		return ClaimSubject
	case ClaimNameEmail:
		return ClaimEmail
	case ClaimNameTokenID:
		return ClaimTokenID
	case ClaimNameUserID:
		return ClaimUserID
	case ClaimNameRole:
		return ClaimRole
	default:
		return ClaimCustom
	}
}

// Claim — типизированная пара (вид, значение).
type Claim struct {
	Kind  ClaimKind
	Type  string
	Value string
}

// NewClaim строит claim по имени, определяя вид автоматически.
func NewClaim(name, value string) Claim {
	return Claim{Kind: KindOf(name), Type: name, Value: value}
}

// TypeName возвращает имя claim'а в токене.
func (c Claim) TypeName() string {
	if c.Kind == ClaimCustom {
		return c.Type
	}

	return c.Kind.Name()
}

// Claims — упорядоченное множество claim'ов без дубликатов (по имени и значению).
type Claims struct {
	items []Claim
	seen  map[[2]string]struct{}
}

// Add добавляет claim, если такого ещё нет. Возвращает true при добавлении.
func (c *Claims) Add(claim Claim) bool {
	if c.seen == nil {
		c.seen = make(map[[2]string]struct{})
	}

	key := [2]string{claim.TypeName(), claim.Value}
	if _, ok := c.seen[key]; ok {
		return false
	}

	c.seen[key] = struct{}{}
	c.items = append(c.items, claim)

	return true
}

// Items возвращает claim'ы в порядке добавления.
func (c *Claims) Items() []Claim {
	out := make([]Claim, len(c.items))
	copy(out, c.items)

	return out
}

// Len — количество claim'ов.
func (c *Claims) Len() int { return len(c.items) }

// Values возвращает значения всех claim'ов с указанным именем.
func (c *Claims) Values(name string) []string {
	var out []string
	for _, it := range c.items {
		if it.TypeName() == name {
			out = append(out, it.Value)
		}
	}

	return out
}
