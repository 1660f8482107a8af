package icon

// Icon identifies a mark in the glyph table.
type Icon int

const (
	Lua Icon = iota + 1
	Fail
	Success
	Progress
	Mark
	Link
	Lock
	Unlock
)

// Columns: emoji, nerd, plain, kaomoji, squares.
var icons = map[Icon]glyphs{
	Lua:      {"🌙", "\ue620", "Lua", "(=^･ω･^=)", "🟦"},
	Fail:     {"💀", "\uf00d", "X", "(×_×)", "🟥"},
	Success:  {"🎉", "\uf00c", "OK", "(^_^)", "🟩"},
	Progress: {"⏳", "\uf252", "...", "(・_・)", "🟨"},
	Mark:     {"✔", "\uf058", "*", "(＾▽＾)", "🟪"},
	Link:     {"🔗", "\uf0c1", "->", "(・→・)", "🟫"},

	// Tiers that need a signed-in account, and those that do not.
	Lock:   {"🔒", "\uf023", "[auth]", "(ㆆ _ ㆆ)", "🟧"},
	Unlock: {"🔓", "\uf09c", "[free]", "(ᵔᴥᵔ)", "⬜"},
}
