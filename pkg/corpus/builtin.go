package corpus

// Builtin returns the starter corpus used when no corpus file is configured.
// Small on purpose: it keeps the binary usable out of the box for demos and
// smoke tests, not for real suggestion quality.
func Builtin() []string {
	return []string{
		"i am happy",
		"i am sad",
		"i love python",
		"i am learning python",
		"i am learning to type",
		"you are doing great",
		"you are almost there",
		"we are writing code",
		"we are testing the model",
		"she is reading a book",
		"he is writing a letter",
		"they are playing outside",
		"the weather is nice today",
		"the weather is cold today",
		"this is a simple example",
		"this is a test sentence",
		"thank you very much",
		"see you next time",
		"have a nice day",
		"have a good time",
	}
}
