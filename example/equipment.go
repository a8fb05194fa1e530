package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	resourceclient "github.com/mantenimiento/go-resourceclient"
)

// Equipment is a record of the equipos resource.
type Equipment struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// EquipmentClient adds typed lookups on top of the base resource client.
type EquipmentClient struct {
	*resourceclient.Client
}

var _ resourceclient.Resource = (*EquipmentClient)(nil)

// NewEquipmentClient returns a client for the equipos resource below base.
func NewEquipmentClient(base *resourceclient.Client) *EquipmentClient {
	return &EquipmentClient{Client: base.Resource("equipos/")}
}

// Get returns the equipment with the given id, or nil when the server has no
// such record.
func (c *EquipmentClient) Get(id int) (*Equipment, error) {
	resp, err := c.FindByID(id)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if err := resourceclient.CheckResponse(resp.Response); err != nil {
		return nil, err
	}

	e := new(Equipment)
	if err := resourceclient.DecodeJSON(resp, e); err != nil {
		return nil, err
	}
	return e, nil
}

func main() {
	base, err := resourceclient.NewClient()
	if err != nil {
		logrus.Fatal(err)
	}

	e, err := NewEquipmentClient(base).Get(1)
	if err != nil {
		logrus.Error(err)
		return
	}
	fmt.Printf("found %+v\n", e)
}
