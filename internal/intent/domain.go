package intent

// Directory intents.
const (
	ListProfessors    = "list_professors"
	ListSubjects      = "list_subjects"
	ListSchedules     = "list_schedules"
	ProfessorSearch   = "professor_search"
	WhoTeaches        = "who_teaches"
	ProfessorSchedule = "professor_schedule"
	SubjectSchedule   = "subject_schedule"
	DaySchedule       = "day_schedule"
	RoomSchedule      = "room_schedule"
	SectionSchedule   = "section_schedule"
	Schedule          = "schedule"
	Subject           = "subject"
	Classroom         = "classroom"
	Contact           = "contact"
	Attachment        = "attachment"
	Department        = "department"
	Greeting          = "greeting"
	Farewell          = "farewell"
	Thanks            = "thanks"
	Help              = "help"

	// General is returned when no directory trigger matches.
	General = "general"
)

// Several trigger lists overlap: bare "schedule" also appears inside every
// *_schedule phrase and "class" inside "classes on monday". The scoped intents
// are therefore declared before the generic ones.
var domain = NewMatcher([]Rule{
	{ListProfessors, []string{
		"list professors", "list all professors", "show all professors",
		"all professors", "every professor", "available professors",
		"list teachers", "show teachers", "faculty list", "list faculty",
		"show all teachers", "show every professor",
	}},
	{ListSubjects, []string{
		"list all subjects", "list all courses", "show all subjects",
		"show all courses", "all subjects", "all courses", "every subject",
		"list subjects", "list courses", "subject list", "course list",
	}},
	{ListSchedules, []string{
		"list schedules", "list all schedules", "show all schedules",
		"all schedules", "every schedule", "available schedules",
		"show schedules", "show all scheds", "list scheds",
	}},
	{ProfessorSearch, []string{
		"find professor", "find prof", "search professor", "search prof",
		"who is professor", "who is prof", "tell me about professor", "tell me about prof",
		"show me professor", "show me prof", "get professor", "get prof",
		"look for professor", "look for prof", "looking for professor", "looking for prof",
		"info about professor", "info about prof", "information about professor",
	}},
	{WhoTeaches, []string{
		"who teaches", "who is teaching", "who handles", "who's teaching",
		"teacher of", "instructor of", "professor for", "prof for",
		"find teacher for", "find instructor for", "find professor for",
	}},
	{ProfessorSchedule, []string{
		"schedule of", "sched of", "schedule for", "sched for",
		"timetable of", "timetable for", "classes of", "classes for",
		"what time does prof", "what time does professor",
		"when does prof", "when does professor",
		"show schedule of", "show sched of", "get schedule of",
		"view schedule of", "display schedule of",
	}},
	{SubjectSchedule, []string{
		"schedule of subject", "schedule for subject",
		"schedule of course", "schedule for course",
		"time for subject", "time for course", "class time for",
		"when is cs", "when is it", "when is eng", "when is math",
		"when is database", "when is programming", "when is algorithm",
	}},
	{DaySchedule, []string{
		"schedule on monday", "schedule on tuesday", "schedule on wednesday",
		"schedule on thursday", "schedule on friday", "schedule on saturday",
		"classes on monday", "classes on tuesday", "classes on wednesday",
		"classes on thursday", "classes on friday", "monday schedule",
		"tuesday schedule", "wednesday schedule", "thursday schedule", "friday schedule",
		"what classes on monday", "what classes on tuesday", "what classes on wednesday",
		"what classes on thursday", "what classes on friday",
	}},
	{RoomSchedule, []string{
		"schedule in room", "schedule in classroom", "classes in room",
		"what classes in room", "who uses room", "room schedule",
		"classroom schedule", "schedule for room",
	}},
	{SectionSchedule, []string{
		"schedule for section", "section schedule", "classes for section",
		"what section", "which section",
	}},
	{Schedule, []string{
		"schedule", "sched", "timetable", "time table",
		"when is", "when does", "when do", "what time is", "what time does",
		"class time", "class schedule", "class sched",
		"show schedule", "show sched", "get schedule", "get sched",
		"view schedule", "see schedule", "display schedule",
		"available time", "free time",
	}},
	{Subject, []string{
		"subject", "subjects", "course", "courses", "class",
		"what subjects", "what courses", "show subjects", "show courses",
		"list subjects", "list courses", "available subjects", "available courses",
		"what classes", "find subject", "find course", "search subject", "search course",
		"subject code", "course code", "subject list", "course list",
	}},
	{Classroom, []string{
		"where is", "where's", "location", "room", "classroom",
		"what room", "which room", "find room", "room number",
		"office", "office location", "building", "where can i find",
		"how do i get to", "directions to",
	}},
	{Contact, []string{
		"contact", "email", "phone", "reach", "get in touch",
		"how to contact", "contact info", "contact information",
		"phone number", "email address", "how do i reach",
		"how can i contact", "communicate with",
	}},
	{Attachment, []string{
		"attachment", "attachments", "file", "files", "document", "documents",
		"material", "materials", "resource", "resources",
		"syllabus", "handout", "handouts", "notes",
		"download", "uploads", "course material", "study material",
		"slides", "presentation", "pdf",
	}},
	{Department, []string{
		"department", "what department", "which department",
		"from department", "in department", "department of",
	}},
	{Greeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "greetings"}},
	{Farewell, []string{"bye", "goodbye", "see you", "later", "exit", "quit"}},
	{Thanks, []string{"thank", "thanks", "appreciate", "grateful"}},
	{Help, []string{"help me", "i need help", "how do i", "guide", "assist", "support", "commands", "what can you"}},
})

// ClassifyDomain returns the directory intent of text, falling back to General.
func ClassifyDomain(text string) string {
	if label, ok := domain.Match(text); ok {
		return label
	}
	return General
}

// DomainLabels lists directory intents in priority order, without General.
func DomainLabels() []string {
	return domain.Labels()
}
