package worldoftea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func votesFor(questionID string, choices ...string) []*Vote {
	votes := []*Vote{}
	for i := 0; i+1 < len(choices); i += 2 {
		votes = append(votes, &Vote{UserName: choices[i], QuestionID: questionID, SelectedOption: choices[i+1]})
	}
	return votes
}

func TestTallyKnownQuestion(t *testing.T) {
	votes := votesFor("green-q1", "carol", "B", "alice", "B", "bob", "A")
	votes = append(votes, &Vote{UserName: "dave", QuestionID: "green-q2", SelectedOption: "A"})

	res := Tally("green-q1", votes)
	require.Equal(t, "green-q1", res.QuestionID)
	require.NotEmpty(t, res.Question)
	require.Equal(t, 3, res.Total)
	require.Len(t, res.Options, 4)

	require.Equal(t, "A", res.Options[0].Option)
	require.Equal(t, 1, res.Options[0].Count)
	require.Equal(t, []string{"bob"}, res.Options[0].Voters)

	require.Equal(t, "B", res.Options[1].Option)
	require.Equal(t, 2, res.Options[1].Count)
	require.Equal(t, []string{"alice", "carol"}, res.Options[1].Voters)
	require.InDelta(t, 66.67, res.Options[1].Percentage, 0.01)

	require.Equal(t, 0, res.Options[3].Count)
	require.Equal(t, []string{}, res.Options[3].Voters)
	require.Equal(t, float64(0), res.Options[3].Percentage)

	correct := 0
	for _, o := range res.Options {
		require.NotEmpty(t, o.Label)
		if o.Correct {
			correct++
		}
	}
	require.Equal(t, 1, correct)

	require.Equal(t, "B", res.Leader().Option)
}

func TestTallyUnknownQuestion(t *testing.T) {
	res := Tally("poll-1", votesFor("poll-1", "u1", "yes", "u2", "no", "u3", "yes"))
	require.Empty(t, res.Question)
	require.Equal(t, 3, res.Total)
	require.Len(t, res.Options, 2)
	require.Equal(t, "no", res.Options[0].Option)
	require.Equal(t, "yes", res.Options[1].Option)
	require.Equal(t, 2, res.Options[1].Count)
	require.Empty(t, res.Options[1].Label)
}

func TestTallyEmpty(t *testing.T) {
	res := Tally("nobody-q1", nil)
	require.Equal(t, 0, res.Total)
	require.Empty(t, res.Options)
	require.NotNil(t, res.Options)
	require.Nil(t, res.Leader())

	res = Tally("white-q1", nil)
	require.Len(t, res.Options, 4)
	require.Nil(t, res.Leader())
}

func TestLeaderTie(t *testing.T) {
	res := Tally("black-q1", votesFor("black-q1", "u1", "C", "u2", "B"))
	require.Equal(t, "B", res.Leader().Option)
}
