// Package prompt fills a validator.Form interactively on a terminal.
//
// Fill asks for every field in form order and validates each answer as it is
// typed, the way the browser page validates on input. The confirmation field
// is checked against the answers collected so far. Once every field has been
// asked, the record is submitted and the Result returned.
//
// Prompting goes through the Driver interface; SurveyDriver implements it on
// top of github.com/AlecAivazis/survey/v2.
package prompt
