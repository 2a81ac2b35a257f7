package awsmeta

import "context"

// MockClient is a ZoneLister returning canned data, for handler tests and
// offline previews.
type MockClient struct {
	Zones []string
	Err   error
}

// AvailabilityZones implements ZoneLister.
func (m *MockClient) AvailabilityZones(_ context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]string{}, m.Zones...), nil
}
