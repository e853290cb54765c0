package notify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"catalogbuilder/internal/model"
)

const Title = "Catalog update"

// Notifier announces a finished catalog build.
type Notifier interface {
	Notify(ctx context.Context, s model.RunSummary) error
}

func Message(s model.RunSummary) string {
	return fmt.Sprintf("Catalog updated! %d new products, %d restocked", s.NewProducts, s.RestockedProducts)
}

// LogNotifier stands in for push delivery: it only logs what would be sent.
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (n *LogNotifier) Notify(ctx context.Context, s model.RunSummary) error {
	n.Log.WithFields(logrus.Fields{
		"title":     Title,
		"new":       s.NewProducts,
		"restocked": s.RestockedProducts,
	}).Info("push notification (simulated): " + Message(s))
	return nil
}
