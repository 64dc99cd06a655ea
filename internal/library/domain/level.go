package domain

const (
	LevelDiscovery PracticeLevel = iota
	LevelFirstSteps
	LevelGettingThere
	LevelConfident
	LevelFlowState
	LevelMastered
)

// PracticeLevel is how well a song is played, from 0 to 5.
type PracticeLevel int

var levelTitles = map[PracticeLevel]string{
	LevelDiscovery:    "Discovery",
	LevelFirstSteps:   "First Steps",
	LevelGettingThere: "Getting There",
	LevelConfident:    "Confident",
	LevelFlowState:    "Flow State",
	LevelMastered:     "Mastered",
}

func PracticeLevels() []PracticeLevel {
	return []PracticeLevel{
		LevelDiscovery,
		LevelFirstSteps,
		LevelGettingThere,
		LevelConfident,
		LevelFlowState,
		LevelMastered,
	}
}

func (l PracticeLevel) IsValid() bool {
	_, ok := levelTitles[l]
	return ok
}

func (l PracticeLevel) Title() string {
	return levelTitles[l]
}
