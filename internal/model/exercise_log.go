package model

// ExerciseLog is the summary returned for a user's log query.
type ExerciseLog struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// ExerciseReceipt echoes a stored exercise back to the client.
type ExerciseReceipt struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}
