package design

import (
	. "goa.design/goa/v3/dsl"
)

// Request attributes are all strings: bodies arrive as JSON or as forms and
// are normalized to string fields before they are decoded. Validation is done
// by the services so both shapes report the same errors.

var _ = API("unichip", func() {
	Title("Unichip Catalog API")
	Description("Chip catalog, customer inquiries and the admin panel behind them")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// JWT Security
var JWTAuth = JWTSecurity("jwt", func() {
	Description("Admin session token, sent as a bearer header or the session cookie")
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

var HealthResult = Type("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("ok")
	})
	Attribute("service", String, "Service name", func() {
		Example("Unichip Catalog")
	})
	Attribute("database", String, "Database status", func() {
		Example("ok")
	})
	Required("status", "service", "database")
})

// Public catalog search
var _ = Service("catalog", func() {
	Description("Public chip search")
	Method("search", func() {
		Payload(func() {
			Attribute("model", String, "Model number or fragment", func() {
				Example("STM32F103")
			})
		})
		Result(Chip)
		HTTP(func() {
			POST("/search")
			Response(StatusOK)
		})
	})
})

// Contact form intake
var _ = Service("contact", func() {
	Description("Customer inquiry intake")
	Method("submit", func() {
		Payload(func() {
			Attribute("company", String, "Company name")
			Attribute("name", String, "Contact name")
			Attribute("email", String, "Contact email")
			Attribute("phone", String, "Contact phone")
			Attribute("message", String, "Inquiry text")
		})
		Result(SubmitResult)
		HTTP(func() {
			POST("/contact")
			Response(StatusOK)
		})
	})
})

var SubmitResult = Type("SubmitResult", func() {
	Attribute("id", UInt, "Stored inquiry id, absent when the store failed")
	Attribute("message", String, "Confirmation shown to the visitor")
	Required("message")
})

// Admin chip management
var _ = Service("chip", func() {
	Description("Chip catalog administration")
	Security(JWTAuth)

	Method("list", func() {
		Payload(func() {
			Token("token", String, "JWT token")
		})
		Result(ArrayOf(Chip))
		HTTP(func() {
			GET("/admin/chips")
			Response(StatusOK)
		})
	})

	Method("get", func() {
		Payload(func() {
			Token("token", String, "JWT token")
			Attribute("id", String, "Chip id")
			Required("id")
		})
		Result(Chip)
		HTTP(func() {
			GET("/admin/chip/{id}")
			Response(StatusOK)
		})
	})

	Method("add", func() {
		Payload(ChipForm)
		Result(ChipMutation)
		HTTP(func() {
			POST("/admin/chip/add")
			Response(StatusOK)
		})
	})

	Method("update", func() {
		Payload(func() {
			Extend(ChipForm)
			Attribute("id", String, "Chip id")
			Required("id")
		})
		Result(ChipMutation)
		HTTP(func() {
			POST("/admin/chip/update/{id}")
			Response(StatusOK)
		})
	})

	Method("delete", func() {
		Payload(func() {
			Token("token", String, "JWT token")
			Attribute("id", String, "Chip id")
			Attribute("csrf_token", String, "Form token, required for cookie sessions")
			Required("id")
		})
		Result(Acknowledgement)
		HTTP(func() {
			POST("/admin/chip/delete/{id}")
			Response(StatusOK)
		})
	})
})

var ChipForm = Type("ChipForm", func() {
	Token("token", String, "JWT token")
	Attribute("model", String, "Model number", func() {
		Example("STM32F103C8T6")
	})
	Attribute("description", String, "Description")
	Attribute("stock", String, "Units in stock", func() {
		Example("120")
	})
	Attribute("price", String, "Unit price", func() {
		Example("1.85")
	})
})

var Chip = Type("Chip", func() {
	Attribute("id", UInt, "Chip id")
	Attribute("model", String, "Model number")
	Attribute("description", String, "Description")
	Attribute("stock", Int, "Units in stock")
	Attribute("price", Float64, "Unit price")
	Required("id", "model", "description", "stock", "price")
})

var ChipMutation = Type("ChipMutation", func() {
	Attribute("message", String, "Outcome")
	Attribute("chip", Chip, "Chip as stored")
	Required("message", "chip")
})

var Acknowledgement = Type("Acknowledgement", func() {
	Attribute("message", String, "Outcome")
	Required("message")
})

// Notification recipient settings
var _ = Service("settings", func() {
	Description("Primary notification recipient")
	Security(JWTAuth)

	Method("show", func() {
		Payload(func() {
			Token("token", String, "JWT token")
		})
		Result(EmailSettings)
		HTTP(func() {
			GET("/admin/settings/email")
			Response(StatusOK)
		})
	})

	Method("update", func() {
		Payload(func() {
			Token("token", String, "JWT token")
			Attribute("email", String, "Primary recipient")
			Attribute("cc_email", String, "Comma separated addresses added to the CC list")
		})
		Result(EmailSettingsUpdate)
		HTTP(func() {
			POST("/admin/settings/email")
			Response(StatusOK)
		})
	})
})

var EmailSettings = Type("EmailSettings", func() {
	Attribute("email_recipient", String, "Primary recipient")
	Attribute("cc", ArrayOf(RecipientCC), "CC list")
	Required("email_recipient", "cc")
})

var EmailSettingsUpdate = Type("EmailSettingsUpdate", func() {
	Attribute("message", String, "Outcome")
	Attribute("email_recipient", String, "Primary recipient")
	Attribute("added_cc", ArrayOf(String), "Addresses added to the CC list")
	Required("message", "email_recipient")
})

// CC list
var _ = Service("cc", func() {
	Description("Notification CC list")
	Security(JWTAuth)

	Method("list", func() {
		Payload(func() {
			Token("token", String, "JWT token")
		})
		Result(CCList)
		HTTP(func() {
			GET("/admin/email/cc")
			Response(StatusOK)
		})
	})

	Method("add", func() {
		Payload(func() {
			Token("token", String, "JWT token")
			Attribute("email", String, "Address to add")
		})
		Result(CCMutation)
		HTTP(func() {
			POST("/admin/email/cc")
			Response(StatusOK)
		})
	})

	Method("update", func() {
		Payload(func() {
			Token("token", String, "JWT token")
			Attribute("id", String, "CC id")
			Attribute("is_active", String, "true or false")
			Required("id")
		})
		Result(CCMutation)
		HTTP(func() {
			PUT("/admin/email/cc/{id}")
			Response(StatusOK)
		})
	})

	Method("delete", func() {
		Payload(func() {
			Token("token", String, "JWT token")
			Attribute("id", String, "CC id")
			Required("id")
		})
		Result(CCMutation)
		HTTP(func() {
			DELETE("/admin/email/cc/{id}")
			Response(StatusOK)
		})
	})
})

var RecipientCC = Type("RecipientCC", func() {
	Attribute("id", UInt, "CC id")
	Attribute("email", String, "Address")
	Attribute("is_active", Boolean, "Whether the address receives notifications")
	Attribute("created_at", String, "Creation time", func() {
		Format(FormatDateTime)
	})
	Required("id", "email", "is_active", "created_at")
})

var CCList = Type("CCList", func() {
	Attribute("cc_emails", ArrayOf(RecipientCC), "CC list")
	Required("cc_emails")
})

var CCMutation = Type("CCMutation", func() {
	Attribute("message", String, "Outcome")
	Attribute("cc", RecipientCC, "CC row")
	Required("message", "cc")
})
