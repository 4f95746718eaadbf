package categorydisplay

// Seed is a category created for users that have none of a type yet.
type Seed struct {
	Name  string
	Icon  string
	Color string
}

// DefaultExpense returns the categories seeded for expenses.
func DefaultExpense() []Seed {
	return []Seed{
		{"Alimentação", "🍔", "#EF4444"},
		{"Transporte", "🚗", "#F59E0B"},
		{"Moradia", "🏠", "#8B5CF6"},
		{"Saúde", "💊", "#EC4899"},
		{"Educação", "📚", "#3B82F6"},
		{"Lazer", "🎮", "#10B981"},
		{"Compras", "🛍️", "#F97316"},
		{"Outros", "📦", "#6B7280"},
	}
}

// DefaultIncome returns the categories seeded for income.
func DefaultIncome() []Seed {
	return []Seed{
		{"Salário", "💼", "#22c55e"},
		{"Investimento", "📈", "#0ea5e9"},
		{"Outro", "💡", "#a855f7"},
	}
}
