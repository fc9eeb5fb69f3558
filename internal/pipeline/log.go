package pipeline

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "pipeline")
