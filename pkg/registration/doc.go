// Package registration declares the user registration form: its closed set of
// fields, the rule attached to each one and the password confirmation check.
//
// Fields are typed constants, so code that refers to a field the form does
// not have fails to compile. Raw identifiers coming from outside (CLI flags,
// form posts) go through ParseField, which rejects unknown names.
//
//	res := registration.Submit(registration.Values{
//	    registration.FullName: "John Doe",
//	    registration.Email:    "john@example.com",
//	    registration.Password: "Secret1!",
//	    registration.ConfirmPassword: "Secret1!",
//	})
//	if !res.Accepted {
//	    for _, field := range res.Failed() {
//	        fmt.Println(field, res.Outcomes[field].Message)
//	    }
//	}
package registration
