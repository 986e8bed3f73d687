package synapsecx_test

import (
	"context"
	"fmt"
	"log"

	"github.com/FrenchMajesty/synapsecx"
)

// Example shows text analysis without any speech provider
func Example_analyzeText() {
	analyzer, err := synapsecx.NewAnalyzer(context.Background(), synapsecx.Config{DisableVoice: true})
	if err != nil {
		log.Fatal(err)
	}

	result := analyzer.AnalyzeText(context.Background(), "Thank you so much, I really appreciate it!")

	fmt.Println("Emotions:", result.Emotions)
	fmt.Println("Top tone:", result.Tones[0])
	// Output:
	// Emotions: [neutral]
	// Top tone: polite
}

// Example shows the lightweight conversation analysis
func Example_analyzeConversation() {
	analyzer, err := synapsecx.NewAnalyzer(context.Background(), synapsecx.Config{DisableVoice: true})
	if err != nil {
		log.Fatal(err)
	}

	result := analyzer.AnalyzeConversation(context.Background(), "I hate this! This is unacceptable and frustrating.")

	fmt.Println(result.Sentiment, result.Emotion, result.Intent)
	// Output: negative angry general inquiry
}

// Example shows voice analysis with the default providers, configured from the environment
// (OPENAI_API_KEY for recognition, GOOGLE_TRANSLATE_API_KEY for translation) and ffmpeg capture
func Example_voice() {
	analyzer, err := synapsecx.NewAnalyzer(context.Background(), synapsecx.Config{})
	if err != nil {
		log.Fatal(err)
	}

	result := analyzer.AnalyzeDualVoiceConversation(context.Background())
	if result.Failed() {
		fmt.Println(result.Error)
		return
	}

	fmt.Printf("%s: %s -> %s (%s, %s)\n",
		result.DetectedLanguage, result.OriginalText, result.TranslatedText, result.Sentiment, result.Intent)
}
