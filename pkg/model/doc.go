// Package model defines the data structures shared by the AdWords SDK layers.
//
// # Credentials
//
// Credentials are the six values attached to every SOAP call:
//
//	creds := model.Credentials{
//		Email:            "user@example.com",
//		Password:         "secret",
//		DeveloperToken:   "DEV_TOKEN",
//		ApplicationToken: "APP_TOKEN",
//		UserAgent:        "my-tool",
//		ClientEmail:      "client@example.com", // delegated sub-account
//	}
//
// # Results
//
// Remote operations return a *Result whose Kind is decided when the response
// is decoded:
//
//	Empty  - the response carried no return element
//	Single - exactly one return element
//	Many   - two or more return elements
//
// Operations classified Plural are wrapped by the sdk package so their Kind is
// always Many, masking the wire encoding that collapses empty lists to nothing
// and one-element lists to a bare value.
//
// Structured items are Objects:
//
//	res, _ := client.Invoke(ctx, "getAllAdWordsCampaigns", nil)
//	for _, item := range res.List() {
//		c := item.(model.Object)
//		id, _ := c.ID()
//		budget, _ := c.Micros("budgetAmount")
//		fmt.Println(id, budget)
//	}
//
// # Money
//
// AdWords expresses amounts in micros. Object.Micros and MicrosToUnits convert
// them to decimal currency units (github.com/shopspring/decimal).
package model
