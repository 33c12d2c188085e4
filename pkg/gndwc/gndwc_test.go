package gndwc_test

import (
	"testing"

	"github.com/gnames/gndwc/internal/iocheck"
	"github.com/gnames/gndwc/internal/iotransform"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/stretchr/testify/assert"
)

// TestTransformerContract ensures that the iotransform implementation
// satisfies the gndwc.Transformer interface.
// This is a compile-time check, and the test will not run if the contract
// is broken.
func TestTransformerContract(t *testing.T) {
	cfg := config.New()
	var tr gndwc.Transformer = iotransform.New(cfg)

	assert.NotNil(t, tr,
		"iotransform.New should implement gndwc.Transformer")
}

// TestCheckerContract ensures that the iocheck implementation
// satisfies the gndwc.Checker interface.
// This is a compile-time check, and the test will not run if the contract
// is broken.
func TestCheckerContract(t *testing.T) {
	cfg := config.New()
	var chk gndwc.Checker = iocheck.New(cfg)

	assert.NotNil(t, chk,
		"iocheck.New should implement gndwc.Checker")
}
