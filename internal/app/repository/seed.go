package repository

import (
	"time"

	"paperhelp/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Начальное состояние сайта: справочник цен, контент и демо-заказы.
type SeedData struct {
	Levels          []ds.AcademicLevel
	Deadlines       []ds.DeadlineOption
	Subjects        []ds.Subject
	Services        []ds.Service
	Addons          []ds.Addon
	Samples         []ds.Sample
	Articles        []ds.Article
	Orders          []ds.Order
	SupportMessages []ds.SupportMessage
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed строит демо-данные. Все времена заказов и сообщений отсчитываются от now.
func Seed(now time.Time) SeedData {
	hours := func(h float64) time.Time {
		return now.Add(time.Duration(h * float64(time.Hour)))
	}
	days := func(d float64) time.Time {
		return hours(d * 24)
	}

	return SeedData{
		Levels: []ds.AcademicLevel{
			{ID: "high_school", Name: "High School", Multiplier: dec("1.0"), SortOrder: 1},
			{ID: "undergrad", Name: "Undergraduate", Multiplier: dec("1.15"), SortOrder: 2},
			{ID: "master", Name: "Master", Multiplier: dec("1.30"), SortOrder: 3},
			{ID: "phd", Name: "PhD", Multiplier: dec("1.50"), SortOrder: 4},
		},
		Deadlines: []ds.DeadlineOption{
			{Hours: 3, Label: "3 hours", Multiplier: dec("2.5"), Urgency: "urgent"},
			{Hours: 6, Label: "6 hours", Multiplier: dec("2.2"), Urgency: "urgent"},
			{Hours: 12, Label: "12 hours", Multiplier: dec("1.9"), Urgency: "urgent"},
			{Hours: 24, Label: "24 hours", Multiplier: dec("1.5"), Urgency: "standard"},
			{Hours: 48, Label: "2 days", Multiplier: dec("1.25"), Urgency: "standard"},
			{Hours: 72, Label: "3 days", Multiplier: dec("1.1"), Urgency: "standard"},
			{Hours: 168, Label: "7 days", Multiplier: dec("1.0"), Urgency: "standard"},
			{Hours: 336, Label: "14 days", Multiplier: dec("0.9"), Urgency: "standard"},
		},
		Subjects: []ds.Subject{
			{ID: 1, Name: "General", Multiplier: dec("1.0")},
			{ID: 2, Name: "English & Literature", Multiplier: dec("1.0")},
			{ID: 3, Name: "History", Multiplier: dec("1.0")},
			{ID: 4, Name: "Psychology", Multiplier: dec("1.05")},
			{ID: 5, Name: "Business & Management", Multiplier: dec("1.05")},
			{ID: 6, Name: "Sociology", Multiplier: dec("1.0")},
			{ID: 7, Name: "Law", Multiplier: dec("1.1")},
			{ID: 8, Name: "STEM (Science, Tech, Engineering, Math)", Multiplier: dec("1.2")},
			{ID: 9, Name: "Medical & Healthcare", Multiplier: dec("1.15")},
		},
		Services: []ds.Service{
			{ID: 1, Name: "Essay Writing", Icon: "📝", Multiplier: dec("1.0")},
			{ID: 2, Name: "Research Paper", Icon: "🔬", Multiplier: dec("1.1")},
			{ID: 3, Name: "Dissertation", Icon: "🎓", Multiplier: dec("1.2")},
			{ID: 4, Name: "Editing & Proofreading", Icon: "✍️", Multiplier: dec("0.7")},
			{ID: 5, Name: "Coursework Help", Icon: "📚", Multiplier: dec("1.0")},
			{ID: 6, Name: "Case Study Analysis", Icon: "📊", Multiplier: dec("1.05")},
			{ID: 7, Name: "Thesis Writing", Icon: "🏛️", Multiplier: dec("1.15")},
			{ID: 8, Name: "Admission Essay", Icon: "📨", Multiplier: dec("1.0")},
		},
		Addons: []ds.Addon{
			{ID: "powerpoint", Name: "PowerPoint Slides", Price: dec("5.00"), Unit: "per slide", SortOrder: 1},
			{ID: "turnitinAI", Name: "Turnitin AI Report", Price: dec("7.99"), Unit: "flat fee", SortOrder: 2},
			{ID: "turnitinPlagiarism", Name: "Turnitin Plagiarism Report", Price: dec("9.99"), Unit: "flat fee", SortOrder: 3},
			{ID: "copyLeaks", Name: "CopyLeaks Report", Price: dec("6.99"), Unit: "flat fee", SortOrder: 4},
			{ID: "gptZero", Name: "GPTZero Report", Price: dec("6.99"), Unit: "flat fee", SortOrder: 5},
			{ID: "originalityAI", Name: "Originality.ai Report", Price: dec("6.99"), Unit: "flat fee", SortOrder: 6},
		},
		Samples: []ds.Sample{
			{ID: 1, Title: "The Impact of Social Media on Modern Politics", Subject: "Sociology", AcademicLevel: "Undergraduate", Pages: 10, FileURL: "#", IsFeatured: true},
			{ID: 2, Title: "An Analysis of Shakespeare's Othello", Subject: "English & Literature", AcademicLevel: "High School", Pages: 5, FileURL: "#", IsFeatured: true},
			{ID: 3, Title: "Machine Learning Algorithms in Healthcare", Subject: "STEM (Science, Tech, Engineering, Math)", AcademicLevel: "Master", Pages: 25, FileURL: "#", IsFeatured: true},
			{ID: 4, Title: "The Role of Ethics in Corporate Law", Subject: "Law", AcademicLevel: "PhD", Pages: 50, FileURL: "#", IsFeatured: true},
			{ID: 5, Title: "A Case Study on Apple Inc.'s Marketing Strategy", Subject: "Business & Management", AcademicLevel: "Undergraduate", Pages: 12, FileURL: "#", IsFeatured: true},
			{ID: 6, Title: "Cognitive Behavioral Therapy for Anxiety Disorders", Subject: "Psychology", AcademicLevel: "Master", Pages: 18, FileURL: "#", IsFeatured: false},
			{ID: 7, Title: "The Causes and Effects of the American Civil War", Subject: "History", AcademicLevel: "High School", Pages: 8, FileURL: "#", IsFeatured: false},
			{ID: 8, Title: "Patient Privacy in the Digital Age of Medicine", Subject: "Medical & Healthcare", AcademicLevel: "Master", Pages: 20, FileURL: "#", IsFeatured: true},
		},
		Articles: []ds.Article{
			{
				ID:          1,
				Title:       "Mastering the Thesis Statement: A Step-by-Step Guide",
				Author:      "Dr. Jane Foster",
				Category:    "Writing Tips",
				Date:        time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC),
				Excerpt:     "The thesis statement is the backbone of any academic paper. This guide breaks down how to craft a strong, arguable, and concise thesis that will guide your writing and impress your professor.",
				Content:     "A strong thesis statement is the cornerstone of a successful academic paper. It's not just a topic; it's an argument, a claim that you will spend the rest of your paper proving.\n\nFirst, a thesis must be arguable. Second, it needs to be specific. Finally, a good thesis acts as a roadmap for your paper.",
				ImageURL:    "https://picsum.photos/seed/blog1/800/600",
				IsPublished: true,
			},
			{
				ID:          2,
				Title:       "5 Common Plagiarism Traps and How to Avoid Them",
				Author:      "John Carter",
				Category:    "Academic Integrity",
				Date:        time.Date(2024, 7, 10, 14, 30, 0, 0, time.UTC),
				Excerpt:     "Plagiarism can have serious consequences, but sometimes it's unintentional. Learn about the most common traps students fall into and how to ensure your work is always original.",
				Content:     "Academic integrity is paramount, and avoiding plagiarism is a key part of it.\n\n1. Patchwriting.\n2. Improper Citation.\n3. Self-Plagiarism.\n4. Forgetting Quotation Marks.\n5. Paraphrasing without Citation.",
				ImageURL:    "https://picsum.photos/seed/blog2/800/600",
				IsPublished: true,
			},
			{
				ID:          3,
				Title:       "Choosing the Right Research Methodology",
				Author:      "Dr. Evelyn Reed",
				Category:    "Research",
				Date:        time.Date(2024, 7, 5, 9, 0, 0, 0, time.UTC),
				Excerpt:     "Qualitative, quantitative, or mixed-methods? The choice of research methodology can make or break your research paper or dissertation. We explore the differences to help you decide.",
				Content:     "Choosing the right research methodology is a critical decision.\n\nQuantitative research focuses on numbers and statistical analysis. Qualitative research focuses on understanding concepts, thoughts, or experiences. Mixed-methods research combines both.",
				ImageURL:    "https://picsum.photos/seed/blog3/800/600",
				IsPublished: false,
			},
		},
		Orders: []ds.Order{
			{
				ID: "SPH-84391", UserEmail: "demo@user.com", UserName: "Demo User", UserAvatar: "https://i.pravatar.cc/150?u=demo",
				ServiceName: "Research Paper", SubjectName: "STEM (Science, Tech, Engineering, Math)",
				Status: ds.StatusInProgress, Deadline: days(2), Pages: 15, Price: dec("489.38"), CreatedAt: days(-3),
				ProjectDetails: "This research paper needs to explore the potential of CRISPR-Cas9 technology in treating genetic disorders. APA 7th edition.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderWriter, Timestamp: hours(-2), Text: "Hello! I've started working on your research paper. I've attached the initial outline for your review."},
					{Sender: ds.SenderWriter, Timestamp: hours(-1.9), Attachment: ds.Attachment{FileName: "Outline_SPH-84391.docx", FileSize: "15 KB", FileURL: "#"}},
					{Sender: ds.SenderUser, Timestamp: hours(-1), Text: "Thanks! The outline looks great. Could you please make sure to include a section on the ethical implications?"},
					{Sender: ds.SenderUser, Timestamp: hours(-0.9), Attachment: ds.Attachment{FileName: "Ethical_Considerations_AI.pdf", FileSize: "1.2 MB", FileURL: "#"}},
					{Sender: ds.SenderWriter, Timestamp: hours(-0.5), Text: "Excellent point. I'll integrate that section and the reference article."},
				},
			},
			{
				ID: "SPH-84112", UserEmail: "demo@user.com", UserName: "Demo User", UserAvatar: "https://i.pravatar.cc/150?u=demo",
				ServiceName: "Essay Writing", SubjectName: "History",
				Status: ds.StatusInProgress, Deadline: hours(18), Pages: 5, Price: dec("103.50"), CreatedAt: days(-1),
				ProjectDetails: "The essay topic is 'The role of propaganda in World War II'. MLA citation style.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderUser, Timestamp: hours(-1), Text: "Hi, just checking in. How is the essay coming along?"},
					{Sender: ds.SenderWriter, Timestamp: hours(-0.8), Text: "It's progressing well! I expect to have the first draft ready in about 6 hours."},
				},
			},
			{
				ID: "SPH-83954", UserEmail: "demo@user.com", UserName: "Demo User", UserAvatar: "https://i.pravatar.cc/150?u=demo",
				ServiceName: "Editing & Proofreading", SubjectName: "English & Literature",
				Status: ds.StatusAwaitingWriter, Deadline: days(5), Pages: 30, Price: dec("264.60"), CreatedAt: days(-1.1),
				ProjectDetails: "Please proofread my manuscript for grammar, spelling, punctuation, and consistency errors.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderUser, Timestamp: hours(-24), Text: "I've uploaded my manuscript for proofreading."},
					{Sender: ds.SenderUser, Timestamp: hours(-23.9), Attachment: ds.Attachment{FileName: "Manuscript_Final.docx", FileSize: "350 KB", FileURL: "#"}},
				},
			},
			{
				ID: "SPH-82045", UserEmail: "demo@user.com", UserName: "Demo User", UserAvatar: "https://i.pravatar.cc/150?u=demo",
				ServiceName: "Case Study Analysis", SubjectName: "Business & Management",
				Status: ds.StatusCompleted, Deadline: days(-7), Pages: 8, Price: dec("110.88"), CreatedAt: days(-12),
				ProjectDetails: "Analyze the attached case study on Netflix's business model using SWOT and Porter's Five Forces.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderWriter, Timestamp: days(-9), Text: "Hi there! Here is the completed case study analysis."},
					{Sender: ds.SenderWriter, Timestamp: days(-8.9), Attachment: ds.Attachment{FileName: "CaseStudy_SPH-82045_FINAL.pdf", FileSize: "830 KB", FileURL: "#"}},
					{Sender: ds.SenderUser, Timestamp: days(-8), Text: "This is perfect, thank you so much for the great work!"},
				},
			},
			{
				ID: "SPH-84392", UserEmail: "jane.doe@example.com", UserName: "Jane Doe", UserAvatar: "https://i.pravatar.cc/150?u=jane",
				ServiceName: "Dissertation", SubjectName: "Psychology",
				Status: ds.StatusInProgress, Deadline: days(10), Pages: 50, Price: dec("900.90"), CreatedAt: days(-3.5),
				ProjectDetails: "PhD-level dissertation on 'The Impact of Social Media on Adolescent Mental Health'. Mixed-methods approach.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderUser, Timestamp: days(-3), Text: "Hi, I've just placed an order for my dissertation. I'd appreciate regular updates."},
					{Sender: ds.SenderWriter, Timestamp: days(-2), Text: "Hello Jane, absolutely. I will send you a detailed project plan by tomorrow."},
				},
			},
			{
				ID: "SPH-84393", UserEmail: "sam.wilson@example.com", UserName: "Sam Wilson", UserAvatar: "https://i.pravatar.cc/150?u=sam",
				ServiceName: "Coursework Help", SubjectName: "Law",
				Status: ds.StatusAwaitingWriter, Deadline: days(4), Pages: 10, Price: dec("184.40"), CreatedAt: hours(-1.5),
				ProjectDetails: "Problem questions on contract law: offer and acceptance, consideration, intention to create legal relations. OSCOLA.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderUser, Timestamp: hours(-1), Text: "I need help with my law coursework, specifically on contract law. All instructions are attached."},
					{Sender: ds.SenderUser, Timestamp: hours(-0.9), Attachment: ds.Attachment{FileName: "ContractLaw_Brief.pdf", FileSize: "450 KB", FileURL: "#"}},
				},
			},
			{
				ID: "SPH-84394", UserEmail: "maria.garcia@example.com", UserName: "Maria Garcia", UserAvatar: "https://i.pravatar.cc/150?u=maria",
				ServiceName: "Admission Essay", SubjectName: "General",
				Status: ds.StatusCompleted, Deadline: days(-5), Pages: 2, Price: dec("27.60"), CreatedAt: days(-8),
				ProjectDetails: "Personal statement for a Master's program in Public Health, around 500 words.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderWriter, Timestamp: days(-6), Text: "Hi Maria, I've completed your admission essay."},
					{Sender: ds.SenderWriter, Timestamp: days(-5.9), Attachment: ds.Attachment{FileName: "AdmissionEssay_MariaG_Final.docx", FileSize: "22 KB", FileURL: "#"}},
					{Sender: ds.SenderUser, Timestamp: days(-5.5), Text: "It's wonderful! You captured my voice perfectly. Thank you so much!"},
				},
			},
			{
				ID: "SPH-84395", UserEmail: "chris.lee@example.com", UserName: "Chris Lee", UserAvatar: "https://i.pravatar.cc/150?u=chris",
				ServiceName: "Research Paper", SubjectName: "Medical & Healthcare",
				Status: ds.StatusInProgress, Deadline: days(12), Pages: 22, Price: dec("367.29"), CreatedAt: days(-1.2),
				ProjectDetails: "Analyze the attached clinical trial data on a new diabetes drug. Full SPSS analysis, Vancouver style.",
				Messages: []ds.OrderMessage{
					{Sender: ds.SenderUser, Timestamp: days(-1), Text: "Please find the dataset for my research paper attached."},
					{Sender: ds.SenderUser, Timestamp: days(-0.9), Attachment: ds.Attachment{FileName: "ClinicalTrial_Data.xlsx", FileSize: "4.5 MB", FileURL: "#"}},
					{Sender: ds.SenderWriter, Timestamp: days(-0.5), Text: "Got it, Chris. I'll start the analysis right away."},
				},
			},
		},
		SupportMessages: []ds.SupportMessage{
			{UserEmail: "demo@user.com", Sender: ds.SenderAdmin, Timestamp: hours(-5), Text: "Welcome to our support chat! How can I help you today?"},
			{UserEmail: "demo@user.com", Sender: ds.SenderUser, Timestamp: hours(-4.9), Text: "Hi, I have a general question about your revision policy."},
			{UserEmail: "demo@user.com", Sender: ds.SenderAdmin, Timestamp: hours(-4.8), Text: "Of course! We offer free revisions within 14 days of order completion, as long as the revision instructions do not contradict your initial requirements."},
		},
	}
}
