// Package scorecardtest holds scorecard payloads shared by tests across packages.
package scorecardtest

import "regexp"

var inningsIDField = regexp.MustCompile(`"inningsId":\s*\d+,\s*`)

// WithoutInningsIDs strips every inningsId field, as some feeds omit it.
func WithoutInningsIDs(payload string) string {
	return inningsIDField.ReplaceAllString(payload, "")
}

const (
	FlatMatchID     = "101_ChennaiSuperKings_vs_MumbaiIndians"
	NestedMatchID   = "102_MumbaiIndians_vs_ChennaiSuperKings"
	NoResultMatchID = "103_ChennaiSuperKings_vs_MumbaiIndians"
)

// FlatMatchJSON is a flat-list scorecard: CSK beat MI by 20 runs.
const FlatMatchJSON = `{
  "appIndex": {"seoTitle": "CSK vs MI, 5th Match, Indian Premier League 2025"},
  "status": "Chennai Super Kings won by 20 runs",
  "matchHeader": {
    "team1": {"name": "Chennai Super Kings"},
    "team2": {"name": "Mumbai Indians"},
    "matchStartTimestamp": 1743328800000
  },
  "matchInfo": {
    "series": {"name": "Indian Premier League 2025"},
    "matchTypeActualKey": "League",
    "matchFormatActualKey": "T20",
    "tossWinnerActualKey": "MI",
    "tossDecisionActualKey": "Bowling"
  },
  "scorecard": [
    {
      "inningsId": 1,
      "batTeamName": "Chennai Super Kings",
      "score": 180,
      "wickets": 5,
      "extras": {"total": 10},
      "batsman": [
        {"id": 1, "name": "Gaikwad", "fullName": "Ruturaj Gaikwad", "runs": 50, "balls": 40, "fours": 4, "sixes": 2, "strkRate": "125.00", "outDec": "c Rohit b Bumrah"},
        {"id": 2, "name": "Dube", "fullName": "Shivam Dube", "runs": 30, "balls": 20, "fours": 2, "sixes": 1, "outDec": "b Bumrah"},
        {"id": 3, "name": "Dhoni", "fullName": "MS Dhoni", "runs": 10, "balls": 5, "fours": 1, "sixes": 0, "outDec": "not out"}
      ],
      "bowler": [
        {"id": 11, "name": "Bumrah", "fullName": "Jasprit Bumrah", "overs": "4", "maidens": 0, "runs": 30, "wickets": 2, "economy": "7.5"},
        {"id": 12, "name": "Chahar", "fullName": "Deepak Chahar", "overs": "3.4", "runs": 40, "wickets": 0, "economy": "10.9"}
      ],
      "pp": {"powerPlay": [{"ppType": "mandatory", "ovrFrom": 0.1, "ovrTo": 6.0, "run": 55}]}
    },
    {
      "inningsId": 2,
      "batTeamName": "Mumbai Indians",
      "score": 160,
      "wickets": 8,
      "extras": {"total": 5},
      "batsman": [
        {"id": 10, "name": "Rohit", "fullName": "Rohit Sharma", "runs": 40, "balls": 30, "fours": 5, "sixes": 1, "outDec": "c Dube b Jadeja"},
        {"id": 11, "name": "Bumrah", "fullName": "Jasprit Bumrah", "runs": 2, "balls": 3, "fours": 0, "sixes": 0, "outDec": "b Jadeja"}
      ],
      "bowler": [
        {"id": 21, "name": "Jadeja", "fullName": "Ravindra Jadeja", "overs": "4", "runs": 24, "wickets": 2, "economy": "6"}
      ],
      "pp": {"powerPlay": [{"ppType": "mandatory", "ovrTo": 6.0, "run": 45}]}
    }
  ]
}`

// NestedMatchJSON is a nested-map scorecard: MI beat CSK by 4 wickets.
const NestedMatchJSON = `{
  "status": "Mumbai Indians won by 4 wkts",
  "matchHeader": {
    "team1": {"name": "MI"},
    "team2": {"name": "CSK"},
    "result": {"winningTeam": "Mumbai Indians", "resultType": "win"},
    "tossResults": {"tossWinnerName": "Chennai Super Kings", "decision": "Batting"}
  },
  "scoreCard": [
    {
      "inningsId": 1,
      "batTeamDetails": {
        "batTeamName": "Chennai Super Kings",
        "batsmenData": {
          "bat_1": {"batId": 1, "batName": "Gaikwad", "fullName": "Ruturaj Gaikwad", "runs": 20, "balls": 15, "fours": 2, "sixes": 1, "outDesc": "c Rohit Sharma b Bumrah", "wicketCode": "CAUGHT", "fielderId1": 10, "bowlerId": 11},
          "bat_2": {"batId": 2, "batName": "Dube", "fullName": "Shivam Dube", "runs": 45, "balls": 30, "fours": 3, "sixes": 3, "outDesc": "b Bumrah", "wicketCode": "BOWLED", "bowlerId": 11}
        }
      },
      "bowlTeamDetails": {
        "bowlersData": {
          "bowl_1": {"bowlerId": 11, "bowlName": "Bumrah", "fullName": "Jasprit Bumrah", "overs": 4, "runs": 28, "wickets": 2, "economy": 7.0}
        }
      },
      "scoreDetails": {"runs": 150, "wickets": 6},
      "extrasData": {"total": 8},
      "ppData": {"pp_1": {"ppType": "mandatory", "ppOversTo": 6.0, "runsScored": 48}}
    },
    {
      "inningsId": 2,
      "batTeamDetails": {
        "batTeamName": "Mumbai Indians",
        "batsmenData": {
          "bat_1": {"batId": 10, "batName": "Rohit", "fullName": "Rohit Sharma", "runs": 70, "balls": 45, "fours": 6, "sixes": 3, "outDesc": "not out"},
          "bat_2": {"batId": 12, "batName": "Chahar", "fullName": "Deepak Chahar", "runs": 5, "balls": 6, "fours": 0, "sixes": 0, "outDesc": "c sub b Jadeja", "wicketCode": "CAUGHT", "fielderId1": 99, "bowlerId": 21}
        }
      },
      "bowlTeamDetails": {
        "bowlersData": {
          "bowl_1": {"bowlerId": 21, "bowlName": "Jadeja", "fullName": "Ravindra Jadeja", "overs": 3.4, "runs": 30, "wickets": 1, "economy": 8.18}
        }
      },
      "scoreDetails": {"runs": 151, "wickets": 4},
      "extrasData": {"total": 6},
      "ppData": {"pp_1": {"ppType": "mandatory", "ppOversTo": 6.0, "runsScored": 52}}
    }
  ]
}`

// NoResultMatchJSON is an abandoned fixture with teams but no play.
const NoResultMatchJSON = `{
  "status": "Match abandoned due to rain",
  "matchHeader": {
    "team1": {"name": "Chennai Super Kings"},
    "team2": {"name": "Mumbai Indians"}
  },
  "scorecard": []
}`

// CommentaryJSON carries one dropped chance and one routine ball.
const CommentaryJSON = `{
  "commentaryList": [
    {"commText": "Bumrah to Dube, B0$ Rohit Sharma spills a sitter at long-on", "commentaryFormats": {"bold": {"formatValue": ["dropped!"]}}},
    {"commText": "Bumrah to Dube, no run, solid defence"}
  ]
}`
