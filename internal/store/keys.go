package store

// Keys builds the namespaced key layout for one user. The layout mirrors the
// persisted documents of the original client: one document per exam aspect,
// keyed by the exam's slug.
type Keys struct {
	UserID string
}

// Prefix is the namespace shared by every key of this user. Export and import
// operate on this prefix.
func (k Keys) Prefix() string {
	return "user_" + k.UserID + "_"
}

// Exams holds the full exam catalogue in a single document.
func (k Keys) Exams() string {
	return k.Prefix() + "exams"
}

// Progress holds one exam's study-status map.
func (k Keys) Progress(slug string) string {
	return k.Prefix() + "progress_" + slug
}

// Resources holds one exam's topic resources.
func (k Keys) Resources(slug string) string {
	return k.Prefix() + "resources_" + slug
}

// Mocks holds one exam's mock exam records.
func (k Keys) Mocks(slug string) string {
	return k.Prefix() + "mocks_" + slug
}

// Prompts holds one exam's per-subject custom prompt templates.
func (k Keys) Prompts(slug string) string {
	return k.Prefix() + "prompts_" + slug
}

// DailyTasks holds today's task counters.
func (k Keys) DailyTasks() string {
	return k.Prefix() + "daily_tasks"
}

// FlashDecks holds every flash deck.
func (k Keys) FlashDecks() string {
	return k.Prefix() + "flash_decks"
}
