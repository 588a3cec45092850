// Package parser implements the extraction orchestrator: it runs the keyword
// gate, the source classifier and the field extractors over one notification
// and merges their results into a single validated payment record.
//
// A Parser is stateless per call and holds only read-only lookup tables, so
// one instance is safe for any number of concurrent Parse calls. Each
// notification is parsed independently: delivery order is not guaranteed and
// duplicates must not corrupt anything, so there is deliberately no state to
// corrupt.
package parser

import (
	"unicode/utf8"

	"fjacquet/paynotify/internal/extractor"
	"fjacquet/paynotify/internal/keywords"
	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"
	"fjacquet/paynotify/internal/parsererror"
	"fjacquet/paynotify/internal/sources"
)

// Confidence contributions per extracted field. The sum is capped at 1.0.
const (
	confidenceAmountMarked   = 0.4
	confidenceAmountUnmarked = 0.25
	confidenceDirection      = 0.3
	confidenceDirectionGuess = 0.1
	confidencePayee          = 0.2
	confidenceKnownSource    = 0.1
)

// Parser turns raw notification text into structured payment records.
type Parser struct {
	keywords *keywords.Set
	sources  *sources.Table
	logger   logging.Logger
}

// New creates a Parser. Nil arguments fall back to the built-in keyword set,
// source table and a default logger.
func New(set *keywords.Set, table *sources.Table, logger logging.Logger) *Parser {
	if set == nil {
		set = keywords.Default()
	}
	if table == nil {
		table = sources.Default()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		keywords: set,
		sources:  table,
		logger:   logger,
	}
}

// Parse extracts a payment record from one notification. Every failure is a
// typed error from the parsererror package; most are expected no-ops
// (the majority of notifications legitimately aren't payments) and should be
// logged, not surfaced.
func (p *Parser) Parse(input models.NotificationInput) (models.PaymentInfo, error) {
	if reason, ok := validateInput(input); !ok {
		return models.PaymentInfo{}, &parsererror.MalformedInputError{Reason: reason}
	}

	fullText := input.FullText()
	if fullText == "" {
		return models.PaymentInfo{}, &parsererror.EmptyTextError{}
	}

	gateTerm, ok := p.keywords.GateMatch(fullText)
	if !ok {
		return models.PaymentInfo{}, &parsererror.NotPaymentRelatedError{
			Snippet: parsererror.Snippet(fullText),
		}
	}

	source := p.sources.Classify(input.SourceAppID)

	amount, amountFound := extractor.ExtractAmount(fullText)
	direction, directionExplicit := extractor.ExtractDirection(fullText, p.keywords)
	payee, payeeFound := extractor.ExtractPayee(fullText)
	tail, _ := extractor.ExtractAccountTail(fullText)

	// The app id can be generic (a universal banking app); a brand mention
	// in the text is then the better signal.
	if source == models.SourceUnknown {
		if hinted, ok := p.sources.FromText(fullText); ok {
			source = hinted
		}
	}

	if !amountFound {
		return models.PaymentInfo{}, &parsererror.AmountNotFoundError{
			Snippet: parsererror.Snippet(fullText),
		}
	}

	info := models.PaymentInfo{
		Amount:        amount.Value,
		Type:          direction,
		Payee:         payee,
		PaymentMethod: source,
		AccountTail:   tail,
		RawText:       fullText,
		Confidence:    confidence(amount.Marked, directionExplicit, payeeFound, source.IsKnown()),
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldSourceApp, Value: input.SourceAppID},
		logging.Field{Key: logging.FieldSource, Value: string(source)},
		logging.Field{Key: logging.FieldKeyword, Value: gateTerm},
		logging.Field{Key: logging.FieldAmount, Value: amount.Value.String()},
		logging.Field{Key: logging.FieldType, Value: string(direction)},
		logging.Field{Key: logging.FieldPayee, Value: payee},
		logging.Field{Key: logging.FieldConfidence, Value: info.Confidence},
	).Debug("Notification parsed into payment record")

	return info, nil
}

// ParseFields is a convenience wrapper over Parse for callers that receive
// the notification as loose platform fields.
func (p *Parser) ParseFields(sourceAppID, title, content, bigText string) (models.PaymentInfo, error) {
	return p.Parse(models.NotificationInput{
		SourceAppID:  sourceAppID,
		Title:        title,
		Body:         content,
		ExpandedBody: bigText,
	})
}

// validateInput rejects structurally invalid arguments. Strings in Go cannot
// be null, so the only representable malformation is invalid UTF-8.
func validateInput(input models.NotificationInput) (string, bool) {
	switch {
	case !utf8.ValidString(input.SourceAppID):
		return "source app id is not valid UTF-8", false
	case !utf8.ValidString(input.Title):
		return "title is not valid UTF-8", false
	case !utf8.ValidString(input.Body):
		return "body is not valid UTF-8", false
	case !utf8.ValidString(input.ExpandedBody):
		return "expanded body is not valid UTF-8", false
	}
	return "", true
}

// confidence builds the weighted score for a successful parse. Each
// independently extracted field contributes its weight; the sum is capped
// at 1.0.
func confidence(amountMarked, directionExplicit, payeeFound, sourceKnown bool) float64 {
	score := confidenceAmountUnmarked
	if amountMarked {
		score = confidenceAmountMarked
	}
	if directionExplicit {
		score += confidenceDirection
	} else {
		score += confidenceDirectionGuess
	}
	if payeeFound {
		score += confidencePayee
	}
	if sourceKnown {
		score += confidenceKnownSource
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
