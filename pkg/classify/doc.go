// Package classify maps a catalog entry to the closest known commercial
// equivalent using ordered keyword rules.
//
// Rules are data, not code: the default set is embedded from rules.toml and
// can be replaced at runtime with [LoadRules]. Matching is greedy first-match
// in rule order, so reordering rules can change results for entries whose
// text matches more than one rule.
//
//	c := classify.Default()
//	c.Classify("Mattermost", "Team chat server", "Communication") // "Slack"
package classify
