package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"internhub/internal/portal"
)

const certificatesPath = "/certificates"

func (c *Client) ListCertificates(ctx context.Context, q portal.ListQuery) (portal.Page[portal.Certificate], error) {
	return list[portal.Certificate](ctx, c, certificatesPath, q)
}

func (c *Client) GetCertificate(ctx context.Context, id string) (portal.Certificate, error) {
	return get[portal.Certificate](ctx, c, certificatesPath, id)
}

func (c *Client) IssueCertificate(ctx context.Context, in portal.CertificateInput) (portal.Certificate, error) {
	if strings.TrimSpace(in.AssessmentID) == "" {
		return portal.Certificate{}, fmt.Errorf("%w: assessment_id is required", ErrInvalidInput)
	}
	return send[portal.Certificate](ctx, c, http.MethodPost, certificatesPath, in)
}
