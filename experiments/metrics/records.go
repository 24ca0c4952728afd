package metrics

// CheckpointRecord captures a frozen evaluation of the learner after a
// number of training games against one opponent.
type CheckpointRecord struct {
	TrainedGames int
	Opponent     string
	Games        int
	Wins         int
	Draws        int
	Losses       int
	States       int // canonical states in memory at the checkpoint
}

// TrainingRecord captures the result mix of one training batch.
type TrainingRecord struct {
	FromGame int
	ToGame   int
	Opponent string
	Wins     int
	Draws    int
	Losses   int
}
