// Package analytics turns a user's transactions, budgets and savings goals
// into summaries, budget comparisons, trends and category breakdowns.
//
// Every function here is pure: callers load the rows and pass a reference
// time, so results depend only on their inputs. Money is accumulated with
// decimal arithmetic and rounded half away from zero, to 2 places for
// amounts and 1 place for percentages. All windows are closed intervals
// [start, now]; rows dated after now are ignored.
package analytics
