package i18n

var bundles = map[string]map[string]string{
	English: {
		// login
		"login.heading":        "Appointment Manager Login",
		"login.username":       "Username",
		"login.password":       "Password",
		"login.language":       "Language",
		"login.submit":         "Log In",
		"login.upcoming":       "You have an appointment starting within 15 minutes.",
		"appointment.title":    "Title",
		"appointment.start":    "Start",
		"appointment.end":      "End",
		"appointment.save":     "Save",
		"appointment.cancel":   "Cancel",
		"appointment.customer": "Customer",

		// errors
		"required_fields":           "Please ensure all fields are complete.",
		"invalid_credentials":       "The username and password did not match.",
		"invalid_phone":             "Please ensure the phone field is in the format: '(###) ###-####'.",
		"invalid_time_format":       "Please ensure that the start and/or end times you input are in the format \"9:00 AM\".",
		"invalid_date":              "Dates must be in the format YYYY-MM-DD.",
		"start_date_after_end_date": "Please ensure that the appointment start date occurs before the appointment end date.",
		"invalid_interval":          "Please ensure that the appointment start time occurs before the appointment end time.",
		"outside_business_hours":    "You have selected a time slot outside of business hours.",
		"time_conflict":             "An existing appointment overlaps with the selected time slot.",
		"customer_not_found":        "Customer not found.",
		"appointment_not_found":     "Appointment not found.",
		"customer_has_appointments": "This customer still has appointments and cannot be deleted.",
		"user_not_found":            "User not found.",
		"invalid_request":           "Invalid request.",
		"invalid_view":              "View must be month or week.",
		"invalid_report":            "Unknown report.",
		"invalid_month":             "Month must be between 1 and 12.",
		"storage_unavailable":       "Storage is unavailable. Please try again later.",
		"too_many_requests":         "Too many attempts. Please wait and try again.",
		"missing_token":             "Please log in to continue.",
		"invalid_token":             "Your session has expired. Please log in again.",
		"internal_error":            "Unexpected error.",
	},
	Spanish: {
		"login.heading":        "Inicio de sesión del gestor de citas",
		"login.username":       "Usuario",
		"login.password":       "Contraseña",
		"login.language":       "Idioma",
		"login.submit":         "Entrar",
		"login.upcoming":       "Tiene una cita que comienza en los próximos 15 minutos.",
		"appointment.title":    "Título",
		"appointment.start":    "Inicio",
		"appointment.end":      "Fin",
		"appointment.save":     "Guardar",
		"appointment.cancel":   "Cancelar",
		"appointment.customer": "Cliente",

		"required_fields":           "Por favor complete todos los campos.",
		"invalid_credentials":       "El usuario y la contraseña no coinciden.",
		"invalid_phone":             "El teléfono debe tener el formato '(###) ###-####'.",
		"invalid_time_format":       "Las horas deben tener el formato \"9:00 AM\".",
		"invalid_date":              "Las fechas deben tener el formato AAAA-MM-DD.",
		"start_date_after_end_date": "La fecha de inicio debe ser anterior a la fecha de fin.",
		"invalid_interval":          "La hora de inicio debe ser anterior a la hora de fin.",
		"outside_business_hours":    "Ha seleccionado un horario fuera del horario laboral.",
		"time_conflict":             "Una cita existente se superpone con el horario seleccionado.",
		"customer_not_found":        "Cliente no encontrado.",
		"appointment_not_found":     "Cita no encontrada.",
		"customer_has_appointments": "El cliente todavía tiene citas y no se puede eliminar.",
		"user_not_found":            "Usuario no encontrado.",
		"invalid_request":           "Solicitud inválida.",
		"invalid_view":              "La vista debe ser month o week.",
		"invalid_report":            "Informe desconocido.",
		"invalid_month":             "El mes debe estar entre 1 y 12.",
		"storage_unavailable":       "El almacenamiento no está disponible. Inténtelo más tarde.",
		"too_many_requests":         "Demasiados intentos. Espere e inténtelo de nuevo.",
		"missing_token":             "Inicie sesión para continuar.",
		"invalid_token":             "Su sesión ha expirado. Inicie sesión de nuevo.",
		"internal_error":            "Error inesperado.",
	},
}
