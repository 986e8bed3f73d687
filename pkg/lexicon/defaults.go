package lexicon

var (
	defaultEmotion = MustNew([]Entry{
		{"happy", []string{"happy", "joy", "glad", "delighted", "excited", "amazing", "awesome"}},
		{"sad", []string{"sad", "unhappy", "depressed", "disappointed", "down"}},
		{"angry", []string{"angry", "mad", "furious", "hate", "unacceptable"}},
		{"fear", []string{"fear", "scared", "nervous", "worried", "anxious"}},
		{"surprise", []string{"surprise", "shocked", "amazed", "wow"}},
		{"disgust", []string{"disgust", "gross", "nasty", "hate"}},
	})

	defaultTone = MustNew([]Entry{
		{"angry", []string{"angry", "hate", "unacceptable", "furious", "mad"}},
		{"excited", []string{"excited", "thrilled", "amazing", "awesome", "!"}},
		{"frustrated", []string{"frustrated", "annoyed", "upset", "disappointed"}},
		{"polite", []string{"please", "thank you", "kindly", "appreciate"}},
		{"sarcastic", []string{"yeah right", "sure", "great..."}},
		{"neutral", nil},
	})

	defaultIntent = MustNew([]Entry{
		{"fraud", []string{"unauthorized", "fraud", "scam"}},
		{"refund", []string{"refund", "money back"}},
		{"complaint", []string{"problem", "issue", "not working"}},
		{"support", []string{"help", "assist"}},
	})

	defaultMood = MustNew([]Entry{
		{"angry", []string{"angry", "frustrated", "frustrating", "upset", "mad", "hate", "unacceptable"}},
		{"happy", []string{"happy", "great", "excellent", "satisfied"}},
	})
)

// Default returns the built-in lexicons
func Default() Set {
	return Set{
		Emotion: defaultEmotion,
		Tone:    defaultTone,
		Intent:  defaultIntent,
		Mood:    defaultMood,
	}
}
