package generator

import "fmt"

const questionSystemPrompt = `You are an exam-content author. Reply with strict JSON only: no prose, no markdown fences. Every question must have exactly 4 options and exactly one correct answer.`

const flashcardSystemPrompt = `You are a study-material author. Reply with strict JSON only: no prose, no markdown fences.`

const interviewSystemPrompt = `You are a technical interviewer. Reply with strict JSON only: no prose, no markdown fences.`

const resumeSystemPrompt = `You are a career coach reviewing resumes for exam and job candidates. Reply with strict JSON only: no prose, no markdown fences.`

func quizPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions on "%s" at %s difficulty.
Return a JSON array where each element is:
{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "<exact text of the correct option>", "explanation": "..."}`,
		count, topic, difficulty)
}

func sectionPrompt(title, topic, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions for the "%s" section of a mock test on "%s" at %s difficulty.
Return a JSON array where each element is:
{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "<exact text of the correct option>", "explanation": "..."}`,
		count, title, topic, difficulty)
}

func flashcardPrompt(topic string, count int) string {
	return fmt.Sprintf(`Generate %d flashcards for revising "%s".
Return a JSON array where each element is:
{"front": "<term or question>", "back": "<definition or answer>", "hint": "<optional hint>"}`,
		count, topic)
}

func interviewPrompt(role, topic, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d interview questions for a "%s" candidate on "%s" at %s difficulty.
Return a JSON array where each element is:
{"question": "...", "modelAnswer": "<a strong answer>", "difficulty": "%s"}`,
		count, role, topic, difficulty, difficulty)
}

func resumeReviewPrompt(resumeJSON string) string {
	return fmt.Sprintf(`Review the following resume and return:
{"feedback": "<specific, actionable feedback>", "score": <0-100>}

Resume:
%s`, resumeJSON)
}
