package jobs

// templates is the fixed job-title table, in lookup order.
var templates = []Template{
	{
		Key:    "software engineer",
		Skills: []string{"Python", "JavaScript", "Java", "React", "Node.js", "SQL", "Git", "Docker", "AWS", "REST APIs"},
		Description: `We are seeking a talented Software Engineer to join our dynamic team. You will be responsible for designing, developing, and maintaining software applications. The ideal candidate should have strong programming skills, experience with modern development frameworks, and a passion for creating high-quality code.

Key Responsibilities:
• Design and develop scalable software solutions
• Collaborate with cross-functional teams
• Write clean, maintainable code
• Participate in code reviews and technical discussions
• Debug and resolve software issues
• Stay updated with latest technologies and best practices`,
	},
	{
		Key:    "data scientist",
		Skills: []string{"Python", "R", "SQL", "Machine Learning", "Statistics", "Pandas", "NumPy", "Scikit-learn", "TensorFlow", "Data Visualization"},
		Description: `We are looking for a Data Scientist to help us extract insights from complex data sets. You will work on machine learning models, statistical analysis, and data visualization to drive business decisions.

Key Responsibilities:
• Develop and implement machine learning models
• Perform statistical analysis and data mining
• Create data visualizations and reports
• Collaborate with stakeholders to understand business needs
• Optimize model performance and accuracy
• Present findings to technical and non-technical audiences`,
	},
	{
		Key:    "frontend developer",
		Skills: []string{"HTML", "CSS", "JavaScript", "React", "Vue.js", "Angular", "TypeScript", "SASS", "Webpack", "Responsive Design"},
		Description: `We are seeking a Frontend Developer to create engaging user interfaces and experiences. You will work with modern web technologies to build responsive and accessible applications.

Key Responsibilities:
• Develop responsive web applications
• Implement user interface designs
• Optimize application performance
• Ensure cross-browser compatibility
• Collaborate with designers and backend developers
• Write clean, maintainable code`,
	},
	{
		Key:    "backend developer",
		Skills: []string{"Python", "Java", "Node.js", "SQL", "MongoDB", "Redis", "Docker", "AWS", "REST APIs", "Microservices"},
		Description: `We are looking for a Backend Developer to build robust server-side applications and APIs. You will work on scalable architectures and database design.

Key Responsibilities:
• Design and develop server-side applications
• Create and maintain RESTful APIs
• Design and optimize databases
• Implement security best practices
• Monitor and optimize application performance
• Collaborate with frontend developers`,
	},
	{
		Key:    "devops engineer",
		Skills: []string{"Docker", "Kubernetes", "AWS", "Jenkins", "Terraform", "Linux", "Bash", "Python", "Git", "Monitoring"},
		Description: `We are seeking a DevOps Engineer to streamline our development and deployment processes. You will work on infrastructure automation and CI/CD pipelines.

Key Responsibilities:
• Design and maintain CI/CD pipelines
• Manage cloud infrastructure
• Automate deployment processes
• Monitor system performance and security
• Implement infrastructure as code
• Collaborate with development teams`,
	},
	{
		Key:    "product manager",
		Skills: []string{"Product Strategy", "Market Research", "Agile", "User Research", "Data Analysis", "SQL", "Python", "A/B Testing", "Product Analytics", "JIRA", "Confluence"},
		Description: `We are looking for a Product Manager to drive product strategy and development. You will work with cross-functional teams to deliver successful products.

Key Responsibilities:
• Define product strategy and roadmap
• Gather and prioritize product requirements
• Work with development teams to deliver features
• Analyze market trends and competition
• Collaborate with stakeholders
• Measure product success metrics`,
	},
	{
		Key:    "ui/ux designer",
		Skills: []string{"Figma", "Adobe Creative Suite", "Sketch", "InVision", "HTML", "CSS", "JavaScript", "Prototyping", "Design Systems", "User Research", "Wireframing", "Usability Testing"},
		Description: `We are seeking a UI/UX Designer to create intuitive and engaging user experiences. You will work on user research, wireframing, and visual design.

Key Responsibilities:
• Conduct user research and usability testing
• Create wireframes and prototypes
• Design user interfaces and experiences
• Collaborate with developers and product managers
• Create design systems and style guides
• Iterate designs based on user feedback`,
	},
	{
		Key:    "machine learning engineer",
		Skills: []string{"Python", "TensorFlow", "PyTorch", "Scikit-learn", "SQL", "Docker", "AWS", "MLOps", "Data Preprocessing", "Model Deployment", "Statistics", "Deep Learning"},
		Description: `We are looking for a Machine Learning Engineer to develop and deploy machine learning models. You will work on data preprocessing, model training, and production deployment.

Key Responsibilities:
• Develop and implement machine learning models
• Preprocess and analyze large datasets
• Deploy models to production environments
• Optimize model performance and accuracy
• Collaborate with data scientists and engineers
• Maintain and monitor ML pipelines`,
	},
	{
		Key:    "cybersecurity analyst",
		Skills: []string{"SIEM", "Wireshark", "Nmap", "Metasploit", "Python", "Linux", "Network Security", "Incident Response", "Vulnerability Assessment", "Security Tools", "Firewall Management"},
		Description: `We are seeking a Cybersecurity Analyst to protect our systems and data from security threats. You will monitor security systems and respond to incidents.

Key Responsibilities:
• Monitor security systems and networks
• Investigate security incidents and threats
• Implement security controls and policies
• Conduct vulnerability assessments
• Respond to security breaches
• Maintain security documentation`,
	},
	{
		Key:    "cloud engineer",
		Skills: []string{"AWS", "Azure", "GCP", "Terraform", "Docker", "Kubernetes", "CI/CD", "Python", "Bash", "Infrastructure as Code", "Cloud Security", "Monitoring"},
		Description: `We are looking for a Cloud Engineer to design and manage cloud infrastructure. You will work on cloud migration, automation, and optimization.

Key Responsibilities:
• Design and implement cloud architectures
• Manage cloud infrastructure and services
• Automate deployment and scaling processes
• Monitor cloud performance and costs
• Implement security best practices
• Support cloud migration projects`,
	},
}

// genericTemplate is returned when no template key matches a title.
var genericTemplate = Template{
	Key:    "generic",
	Skills: []string{"Technical Analysis", "Problem Solving", "Data Analysis", "Project Management", "System Design"},
	Description: `We are seeking a talented professional to join our team. The ideal candidate should have relevant experience and skills in their field.

Key Responsibilities:
• Perform assigned duties and responsibilities
• Collaborate with team members
• Meet project deadlines and goals
• Continuously improve skills and knowledge
• Contribute to team success`,
}
