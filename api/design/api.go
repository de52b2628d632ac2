package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("contactrelay", func() {
	Title("Contact Relay API")
	Description("Receives portfolio contact form submissions and forwards them to the site owner by email")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("Contact Relay")
	})
})

// Submission relay
var _ = Service("relay", func() {
	Description("Validates a contact submission and dispatches a notification email")
	Error("bad_request", ErrorResult, "Malformed or incomplete submission")
	Error("internal", ErrorResult, "Configuration or provider failure", func() {
		Fault()
	})

	Method("send", func() {
		Description("Relay one contact form submission to the site owner")
		Result(SendResult)
		Error("bad_request")
		Error("internal")
		HTTP(func() {
			POST("/send-contact-email")
			// The body is read raw so that malformed JSON can be answered
			// without echoing it back.
			SkipRequestBodyEncodeDecode()
			Response(StatusOK)
			Response("bad_request", StatusBadRequest, func() {
				Body(func() {
					Attribute("message", String, func() {
						Meta("struct:tag:json", "error")
					})
				})
			})
			Response("internal", StatusInternalServerError, func() {
				Body(func() {
					Attribute("message", String, func() {
						Meta("struct:tag:json", "error")
					})
				})
			})
		})
	})
})

var SendResult = ResultType("SendResult", func() {
	Attribute("success", Boolean, "Whether the message was accepted", func() {
		Example(true)
	})
	Attribute("message", String, "Confirmation text", func() {
		Example("Message received! We'll get back to you soon.")
	})
	Required("success", "message")
})

// ContactSubmission documents the raw request body of relay.send.
var ContactSubmission = Type("ContactSubmission", func() {
	Attribute("name", String, "Sender name", func() {
		MinLength(1)
		MaxLength(100)
		Example("Ada Lovelace")
	})
	Attribute("email", String, "Sender email", func() {
		Format(FormatEmail)
		MaxLength(255)
		Example("ada@example.com")
	})
	Attribute("subject", String, "Subject", func() {
		MinLength(1)
		MaxLength(200)
		Example("Collaboration")
	})
	Attribute("message", String, "Message", func() {
		MinLength(10)
		MaxLength(2000)
		Example("I'd love to talk about a project.")
	})
	Required("name", "email", "subject", "message")
})
