package aigen

import "fmt"

const systemPrompt = `
You are a content generator for an IELTS Academic Reading practice application.

Your role is to produce **realistic, exam-style reading passages** with comprehension
questions and a short vocabulary list.

General rules:
1. The passage must read like an IELTS Academic text: factual, neutral register, organised
   into paragraphs separated by blank lines.
2. Classify difficulty as **easy**, **medium** or **hard**.
3. Question types allowed: "multichoice", "truefalse", "fillblank", "matching".
4. Every question has exactly one correct answer. For "truefalse" the correct answer is
   "True" or "False". For "multichoice" include 4 plausible options and make the correct
   answer the full option text.
5. The vocabulary list holds 5-8 words from the passage a learner is likely to look up,
   each with the sentence it appears in.

Expected JSON format:

{
  "title": "<passage title>",
  "body": "<paragraphs separated by blank lines>",
  "topic": "<topic>",
  "difficulty": "<easy | medium | hard>",
  "questions": [
    {
      "type": "multichoice",
      "prompt": "<question text>",
      "options": ["...", "...", "...", "..."],
      "correct_answer": "<the correct option text>",
      "explanation": "<brief explanation>"
    }
  ],
  "vocabulary": [
    { "word": "<word>", "context": "<sentence containing the word>" }
  ]
}

Quality guidelines:
- Distractor options must be plausible and of similar length to the correct one.
- Questions must be answerable from the passage alone, no outside knowledge.
- Never reveal the answer inside the prompt.
- Always return **pure, valid JSON** with no text outside the JSON object.
`

func BuildUserPrompt(req GenerateRequest) string {
	words := req.WordCount
	if words <= 0 {
		words = 350
	}
	if words > 900 {
		words = 900
	}

	qty := req.Questions
	if qty <= 0 {
		qty = 5
	}
	if qty > 13 {
		qty = 13
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	return fmt.Sprintf(
		"Write an IELTS reading passage of about %d words on the topic \"%s\" with difficulty \"%s\", "+
			"followed by %d comprehension questions and a vocabulary list, "+
			"in the JSON format specified in the system prompt. Mix question types.",
		words, req.Topic, difficulty, qty,
	)
}

func BuildImportPrompt(text string, qty int) string {
	if qty <= 0 {
		qty = 5
	}
	if qty > 13 {
		qty = 13
	}

	return fmt.Sprintf(
		"The following text was extracted from an uploaded document. Treat it as the passage body: "+
			"derive a title, topic and difficulty for it, keep the body as given (reflowed into paragraphs), "+
			"and produce %d comprehension questions plus a vocabulary list, "+
			"in the JSON format specified in the system prompt.\n\n---\n%s",
		qty, text,
	)
}
