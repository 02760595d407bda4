package dialect

// stubBuilder, gramer testleri için QueryBuilder'ın düz bir uygulamasıdır.
type stubBuilder struct {
	table          string
	driver         Dialect
	columns        []string
	joins          []JoinClause
	conditions     []Condition
	groupBy        []string
	orderBy        []string
	having         []string
	havingBindings []any
	limit          *int
	offset         *int
}

func (s *stubBuilder) GetTable() string { return s.table }
func (s *stubBuilder) GetDriver() Dialect { return s.driver }
func (s *stubBuilder) GetColumns() []string { return s.columns }
func (s *stubBuilder) GetJoins() []JoinClause { return s.joins }
func (s *stubBuilder) GetConditions() []Condition { return s.conditions }
func (s *stubBuilder) GetGroupBy() []string { return s.groupBy }
func (s *stubBuilder) GetOrderBy() []string { return s.orderBy }
func (s *stubBuilder) GetHaving() []string { return s.having }
func (s *stubBuilder) GetHavingBindings() []any { return s.havingBindings }
func (s *stubBuilder) GetLimit() *int { return s.limit }
func (s *stubBuilder) GetOffset() *int { return s.offset }

func intPtr(n int) *int { return &n }

func and(sql string, bindings ...any) Condition {
	return Condition{Connective: And, Kind: KindRaw, SQL: sql, Bindings: bindings}
}

func or(sql string, bindings ...any) Condition {
	return Condition{Connective: Or, Kind: KindRaw, SQL: sql, Bindings: bindings}
}
