// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package td

const stepGenerationPrompt = `Based on the user provided research project details, list the minimum number of key literature-based research areas (max 6) that are essential for understanding or advancing the project. Do not include business, user research, or anything that requires lab work.

Only include areas that are central to the scientific feasibility and scalability of the technology. Fewer is better. Avoid loosely related topics.

List the steps in a logical order: each should build on the last.

Each step should include:
    A bolded title
    An italicized one-sentence explanation using "we" or "let's"`

const queryGenerationPrompt = `You will be given a list of 1-7 key research focus areas. Each one outlines a focus area for conducting literature reviews that will be completed using a novel AI agent capable of doing deep text-based research. Your task is to generate a series of standalone research queries that will help to reveal the answers to each of the key research focus areas. Questions should be answerable within a literature review and not require any physical investigation to answer. As such, they should be carefully worded to ensure there is no confusion and the queries are very specific and direct without too much filler or complexity. List no more than 3 queries per focus area, but only include those that are genuinely central to answering the key question. Avoid including loosely related or tangential areas. The less queries you provide overall, the better as this will require less research and compute overall. You should also make the queries sequential. In other words, the answer to the first question can be used to make the next questions more direct and specific. As such, you will need to list the questions in a specific order to ensure that the answers are collected and imported into the question that follows. We will run the literature reviews in sequence and so the information we collect at each step can directly inform the next questions.

Where necessary, each question generated should include a variable which is enclosed within square brackets like this '[ENZYME]' where the answer to that variable is currently unknown. In following questions which require the answer to that variable to be included in the text of the question you should enclose it within curly brackets like this '{ENZYME}'.

Here is an example of the formatting of the questions we are expecting:

1. What is the most prevalent type of [POLYMER] found in microplastics pollution?

2. What are the top 3 biggest [CONSUMERS] of microalgae by overall mass consumed in the marine ecosystem and can you give me a breakdown of the [pH] and [TEMPERATURE] as factors in their stomach environment which may impact enzyme activity?

3. Which naturally occurring [ENZYMES] have demonstrated the highest efficacy in degrading {POLYMER} at or close to {pH} and {TEMPERATURE}, and what specific [REACTION RATES] or catalytic efficiencies have been reported?

4. Have {ENZYMES} been successfully expressed and functionally validated in microalgae or other photosynthetic organisms? And, if so, how does the expression of these enzymes in microalgal hosts impact the growth rate, viability, and metabolic stability of the engineered strains?

5. What are the principal [BYPRODUCTS] of {ENZYMES} in plastic degradation?

6. What are the known or [ECOLOGICAL RISKS] associated with byproduct {BYPRODUCTS}, and how can they be evaluated or mitigated to prevent harm to marine organisms and habitats?

7. Which [MICROALGE STRAINS] possess well-characterized genetic manipulation toolkits, facilitating efficient and stable transformation?

8. Out of these {MICROALGE STRAINS}, which exhibit proven robustness under open-pond cultivation (e.g., resilience to fluctuating temperatures, pathogens, and light intensities)?

9. In what ways might the {BYPRODUCTS} of enzymatic microplastic degradation confer positive health effects on marine ecosystems or coral reef systems?

10. Which international, national, or regional [REGULATIONS] govern the deliberate release of genetically modified microalgae into open water bodies, and what data or impact assessments are typically required to secure regulatory approval?

Before returning your results, cut the list of queries down to a maximum of 10 total queries. Ensure that there is at least one query for each key focus area included in the final list. The final list should be a list of queries that represent only the most important questions to validate whether or not the technology is feasible and how one might go about specifically developing it.

For each query, report the query text and the index of the focus area it belongs to (the focus area number, not sequential numbering).`

const researchOutcomePrompt = `You are an elite research specialist with deep expertise in biotechnology, chemistry, and related scientific disciplines. Your task is to conduct a comprehensive analysis of the provided query and deliver an exhaustively detailed response that demonstrates authoritative knowledge, critical evaluation of current research, and sophisticated understanding of the subject matter.

RESPONSE STRUCTURE AND REQUIREMENTS:
1. COMPREHENSIVE TITLE: Create a descriptive, specific title that accurately reflects the core focus of the research topic.

2. SUMMARY (minimum 400 words):
    - Provide a thorough overview of the research question, methodology, and significance
    - Highlight the broader context and implications of this research within its field
    - Explain why this research matters and to whom
    - Include any critical controversies or competing theories

3. KEY FINDINGS (minimum 400 words per finding):
    - Identify and thoroughly analyze at least 3-5 major findings/discoveries
    - For each finding, discuss:
      * The specific methodology that led to this discovery
      * How this finding builds upon or challenges previous research
      * Practical applications and implications
      * Remaining questions or limitations related to this finding
    - Bold the most significant 1-2 findings to emphasize their importance

4. DETAILED ANALYSIS (minimum 1200 words):
    - Create distinct, logically organized sections with descriptive headers
    - Each section must thoroughly explore different dimensions of the research:
      * Historical development and evolution of this research area
      * Competing hypotheses or methodological approaches
      * Cross-disciplinary connections and implications
      * Technical challenges and how researchers overcame them
      * Ethical considerations or controversies
    - Include quantitative data, statistics, or specific metrics where relevant
    - Explain complex concepts with accessible analogies when appropriate

5. CRITICAL EVALUATION (minimum 400 words):
    - Assess methodological strengths and limitations
    - Identify potential biases or constraints in the research design
    - Discuss alternative interpretations of the findings
    - Evaluate the quality of evidence supporting major claims

6. FUTURE DIRECTIONS (minimum 400 words):
    - Predict next steps in this research area
    - Identify unanswered questions or emerging research opportunities
    - Discuss potential technological innovations that could advance this field
    - Consider interdisciplinary collaborations that might yield new insights

7. CONCLUSION (minimum 400 words):
    - Synthesize the major points from your analysis
    - Articulate the broader significance and implications
    - Return to the original research question and assess how completely it has been answered
    - End with thought-provoking insights about future implications

8. REFERENCES AND CITATIONS:
    - Include a minimum 40 high-quality sources and citations
    - Ensure all references are relevant to the topic and from reputable sources
    - Use a mix of primary research articles, reviews, and authoritative texts
    - Ensure citations are up-to-date and relevant to the topic
    - Include a variety of sources, including books, articles, and online resources

FORMAT INSTRUCTIONS:
  - Use proper Markdown formatting throughout your response
  - Utilize nested headers (# for title, ## for major sections, ### for subsections)
  - Employ **bold text** for emphasis on critical points
  - Incorporate *italics* for technical terms, scientific names, or emphasis
  - Use bullet points and numbered lists to organize complex information
  - Include block quotes for significant direct quotations from key researchers
  - Create tables when presenting comparative data (using Markdown table syntax)
  - Do not add a section of citations at the end

QUALITY STANDARDS:
  - Demonstrate depth of analysis that would satisfy graduate-level academic expectations
  - Maintain scientific precision and accuracy throughout
  - Present balanced perspectives on controversial aspects
  - Avoid oversimplification of complex topics
  - Use field-appropriate technical terminology while ensuring accessibility
  - Provide context for specialized concepts

Be aware that your response must be comprehensive and substantive. The expected minimum total length is 8000+ words to adequately address all required components.`

const extractVariablesPrompt = `You are an advanced scientific data extraction specialist. Your task is to precisely identify and extract specific variables from the provided research text. Approach this task with the systematic precision of a scientific researcher mining a dataset for critical values.

EXTRACTION REQUIREMENTS:
1. FORMAT SPECIFICATIONS:
   - Return a valid JSON object where each key exactly matches the requested variable names
   - Ensure all values are strings, even for numerical data
   - For each variable, extract BOTH the specific value AND its complete contextual information

2. CONCISE CONTEXTUAL REQUIREMENTS:
   - Each variable value must include:
     * The precise quantitative or qualitative value identified
     * Brief context (2-3 words) explaining why or how the value is used
     * Keep explanations minimal and focused on primary purpose

3. TECHNICAL TERMINOLOGY PROTOCOLS:
   - Chemical compounds: Provide full IUPAC name followed by common name and abbreviation in parentheses
     Example: "Sodium chloride (common salt, NaCl) at 35g/100mL concentration used as the electrolyte solution"

   - Enzymes: Include the full name, EC number, and abbreviation
     Example: "Trypsin (EC 3.4.21.4, TRY) at 0.25% concentration used for cell dissociation"

   - Organisms: Provide complete binomial nomenclature with strain information
     Example: "Escherichia coli (E. coli) strain K-12 used as the bacterial host"

4. SPECIALIZED VARIABLE HANDLING:
   - pH values: Include exact pH value/range with brief context
     Example: "pH 7.4 for cell culture" or "pH 5.5-6.0 for enzyme activity"

   - Temperature: Provide value as a specific number or range with 2-3 words of context
     Example: "30-40C for protein denaturation" or "95C for PCR cycles"

   - Concentration: Include value, units, and brief context
     Example: "15mM glucose for cell culture" or "0.5M NaCl for extraction"

   - Time intervals: Specify duration with brief context
     Example: "24 hours for incubation" or "5 minutes for reaction"

   - Locations: Provide location name with abbreviation and brief context
     Example: "Lake Michigan (LM) for sampling" or "Amazon Basin (AB) for biodiversity"

   - Reaction rates: Include rate constant with brief context
     Example: "k = 0.15 s-1 for hydrolysis" or "2.3 mol/L/s for oxidation"

5. MISSING DATA PROTOCOL:
   - If a requested variable is not found, provide this exact response structure:
     "Not mentioned in text."

   - If the variable is mentioned but its value is uncertain or given as a range:
     "Reported as [range or approximate value] for [brief context]."

6. RESPONSE FORMAT:
   - Your extracted data must be:
     * Scientifically accurate based on the text
     * Extremely concise (value + 2-3 words context only)
     * Free from unnecessary elaboration
     * Formatted consistently across all variables

Remember: Your goal is to extract values with minimal but meaningful context (2-3 words maximum). Focus on clarity and brevity in your responses.`

const finalReportPrompt = `Generate a final report for the project based on the following queries and their content.`
