package directory

import "time"

// Sample returns a small demonstration directory: five professors, nine
// subjects, thirteen schedules and three attachments. It is used by the
// seed command and by tests across the module.
func Sample() *Dataset {
	credits := func(n int) *int { return &n }
	id := func(n int64) *int64 { return &n }
	uploaded := time.Date(2024, 8, 12, 9, 0, 0, 0, time.UTC)

	return &Dataset{
		Professors: []Professor{
			{ID: 1, Name: "Dr. Maria Santos", Department: "Computer Science", Contact: "09171234567", Email: "maria.santos@university.edu", Bio: "PhD in Computer Science, specializing in AI and Machine Learning", OfficeLocation: "Room 301, Science Building", Specialization: "Artificial Intelligence"},
			{ID: 2, Name: "Prof. Juan Dela Cruz", Department: "Mathematics", Contact: "09187654321", Email: "juan.delacruz@university.edu", Bio: "Master in Mathematics, focus on Applied Mathematics", OfficeLocation: "Room 205, Math Building"},
			{ID: 3, Name: "Dr. Anna Reyes", Department: "Computer Science", Contact: "09191112233", Email: "anna.reyes@university.edu", Bio: "PhD in Software Engineering, expert in Database Systems", OfficeLocation: "Room 305, Science Building", Specialization: "Database Systems"},
			{ID: 4, Name: "Prof. Pedro Garcia", Department: "Information Technology", Contact: "09181234567", Email: "pedro.garcia@university.edu", Bio: "Certified Network Engineer, specializing in Cybersecurity", OfficeLocation: "Room 401, IT Building"},
			{ID: 5, Name: "Dr. Linda Tan", Department: "Computer Science", Bio: "PhD in Data Science, research in Big Data Analytics"},
		},
		Subjects: []Subject{
			{ID: 1, Code: "CS101", Name: "Introduction to Programming", ProfessorID: id(1), Description: "Basic programming concepts using Python", Credits: credits(3)},
			{ID: 2, Code: "CS201", Name: "Data Structures and Algorithms", ProfessorID: id(1), Description: "Advanced data structures and algorithm design", Credits: credits(4)},
			{ID: 3, Code: "MATH101", Name: "Calculus I", ProfessorID: id(2), Description: "Differential and integral calculus", Credits: credits(3)},
			{ID: 4, Code: "CS301", Name: "Database Systems", ProfessorID: id(3), Description: "Relational databases, SQL, and database design", Credits: credits(3)},
			{ID: 5, Code: "IT201", Name: "Network Security", ProfessorID: id(4), Description: "Fundamentals of cybersecurity and network protection", Credits: credits(3)},
			{ID: 6, Code: "CS401", Name: "Machine Learning", ProfessorID: id(1), Description: "Introduction to ML algorithms and applications", Credits: credits(4)},
			{ID: 7, Code: "CS302", Name: "Web Development", ProfessorID: id(3), Description: "Full-stack web development with modern frameworks", Credits: credits(3)},
			{ID: 8, Code: "MATH201", Name: "Linear Algebra", ProfessorID: id(2), Description: "Vector spaces, matrices, and linear transformations", Credits: credits(3)},
			{ID: 9, Code: "CS402", Name: "Data Mining", ProfessorID: id(5), Description: "Techniques for extracting knowledge from large datasets"},
		},
		Schedules: []Schedule{
			{ID: 1, ProfessorID: 1, SubjectID: id(1), Classroom: "Room 101", Day: "Monday", TimeStart: "08:00", TimeEnd: "10:00", Section: "BSCS-1A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 2, ProfessorID: 1, SubjectID: id(1), Classroom: "Room 101", Day: "Wednesday", TimeStart: "08:00", TimeEnd: "10:00", Section: "BSCS-1A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 3, ProfessorID: 1, SubjectID: id(2), Classroom: "Room 102", Day: "Tuesday", TimeStart: "10:00", TimeEnd: "12:00", Section: "BSCS-2A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 4, ProfessorID: 1, SubjectID: id(2), Classroom: "Room 102", Day: "Thursday", TimeStart: "10:00", TimeEnd: "12:00", Section: "BSCS-2A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 5, ProfessorID: 2, SubjectID: id(3), Classroom: "Room 201", Day: "Monday", TimeStart: "13:00", TimeEnd: "15:00", Section: "BSMATH-1A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 6, ProfessorID: 2, SubjectID: id(3), Classroom: "Room 201", Day: "Friday", TimeStart: "13:00", TimeEnd: "15:00", Section: "BSMATH-1A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 7, ProfessorID: 3, SubjectID: id(4), Classroom: "Lab 301", Day: "Wednesday", TimeStart: "13:00", TimeEnd: "16:00", Section: "BSCS-3A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 8, ProfessorID: 3, SubjectID: id(4), Classroom: "Lab 301", Day: "Friday", TimeStart: "13:00", TimeEnd: "16:00", Section: "BSCS-3A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 9, ProfessorID: 4, SubjectID: id(5), Classroom: "Lab 401", Day: "Tuesday", TimeStart: "15:00", TimeEnd: "18:00", Section: "BSIT-2B", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 10, ProfessorID: 1, SubjectID: id(6), Classroom: "Room 102", Day: "Monday", TimeStart: "15:00", TimeEnd: "18:00", Section: "BSCS-4A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 11, ProfessorID: 3, SubjectID: id(7), Classroom: "Lab 302", Day: "Thursday", TimeStart: "13:00", TimeEnd: "16:00", Section: "BSCS-3B", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 12, ProfessorID: 2, SubjectID: id(8), Classroom: "Room 202", Day: "Tuesday", TimeStart: "08:00", TimeEnd: "10:00", Section: "BSMATH-2A", Semester: "1st Semester", AcademicYear: "2024-2025"},
			{ID: 13, ProfessorID: 5, SubjectID: id(9), Classroom: "Lab 303", Day: "Friday", TimeStart: "10:00", TimeEnd: "13:00", Section: "BSCS-4B", Semester: "1st Semester", AcademicYear: "2024-2025"},
		},
		Attachments: []Attachment{
			{ID: 1, ScheduleID: 1, FileName: "cs101-syllabus.pdf", FilePath: "uploads/cs101-syllabus.pdf", FileType: "application/pdf", FileSize: 182044, Description: "Course syllabus and grading policy", UploadedAt: uploaded},
			{ID: 2, ScheduleID: 3, FileName: "cs201-week1.pptx", FilePath: "uploads/cs201-week1.pptx", FileType: "application/vnd.openxmlformats-officedocument.presentationml.presentation", FileSize: 2310432, UploadedAt: uploaded.Add(24 * time.Hour)},
			{ID: 3, ScheduleID: 7, FileName: "cs301-er-diagrams.pdf", FilePath: "uploads/cs301-er-diagrams.pdf", FileType: "application/pdf", FileSize: 540112, Description: "ER modelling exercises", UploadedAt: uploaded.Add(48 * time.Hour)},
		},
	}
}
