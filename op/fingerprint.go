package op

func init() {
	registerHandlers(map[rune]Handler{
		'(': reflect, // fingerprint load: not implemented, see Non-goals
		')': reflect, // fingerprint unload: not implemented, see Non-goals
	})
}
